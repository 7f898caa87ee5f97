package service

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// IDGenerator produces unique listing identifiers.
type IDGenerator interface {
	NextID() string
}

// SnowflakeIDs generates time-ordered ids unique per node.
type SnowflakeIDs struct {
	node *snowflake.Node
}

// NewSnowflakeIDs creates a generator for the given node number (0-1023).
func NewSnowflakeIDs(node int64) (*SnowflakeIDs, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("create snowflake node: %w", err)
	}
	return &SnowflakeIDs{node: n}, nil
}

func (s *SnowflakeIDs) NextID() string {
	return s.node.Generate().String()
}
