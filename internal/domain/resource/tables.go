package resource

var Clients = Table{
	Entity: "client",
	Columns: map[string]string{
		"name":           "name",
		"address":        "address",
		"phone":          "phone",
		"email":          "email",
		"classification": "classification",
		"notes":          "notes",
	},
	Searchable: []string{"name", "address", "phone", "email", "classification"},
}

var Employees = Table{
	Entity: "employee",
	Columns: map[string]string{
		"user":     "user",
		"password": "password",
		"name":     "name",
		"role":     "role",
	},
	Searchable: []string{"user", "name", "role"},
}

var Machinery = Table{
	Entity: "machinery",
	Columns: map[string]string{
		"category":    "category",
		"description": "description",
		"brand":       "brand",
		"quantity":    "quantity",
	},
	Searchable: []string{"category", "description", "brand"},
}

var Supplies = Table{
	Entity: "supply",
	Columns: map[string]string{
		"description": "description",
		"quantity":    "quantity",
	},
	Searchable: []string{"description"},
}

var ScheduledJobs = Table{
	Entity: "scheduled_job",
	Columns: map[string]string{
		"service":  "service",
		"date":     "date",
		"clientId": "client_id",
		"status":   "status",
	},
	Preload:    []string{"Client"},
	Searchable: []string{"service"},
}

var WorkedJobs = Table{
	Entity: "worked_job",
	Columns: map[string]string{
		"service":  "service",
		"date":     "date",
		"clientId": "client_id",
		"status":   "status",
	},
	Preload:    []string{"Client"},
	Searchable: []string{"service", "status"},
}
