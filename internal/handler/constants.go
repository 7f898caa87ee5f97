package handler

import "time"

const (
	// TimeFormat is the standard time format for API responses (RFC3339)
	TimeFormat = time.RFC3339

	// formOverhead is the allowance for non-file multipart fields on top of
	// the image size limit.
	formOverhead = 1 << 20

	// multipartMemory is the part of a multipart form kept in memory.
	multipartMemory = 8 << 20
)
