package entity

type Status string

const (
	// Pending records come from the presigned flow: the object may not exist yet.
	Pending Status = "PENDING"
	// Available records come from the direct flow: the object landed before the record was written.
	Available Status = "AVAILABLE"
)
