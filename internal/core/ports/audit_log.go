package ports

// AuditLog records administrative actions, newest first.
type AuditLog interface {
	Append(message string)
	List() []string
}
