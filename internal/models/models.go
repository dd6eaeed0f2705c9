package models

// Entity is implemented by every CRUD resource row.
type Entity interface {
	PrimaryKey() uint
}

// All lists the tables owned by the application, in migration order.
func All() []any {
	return []any{
		&Client{},
		&Employee{},
		&Machinery{},
		&Supply{},
		&ScheduledJob{},
		&WorkedJob{},
		&AuditLog{},
	}
}
