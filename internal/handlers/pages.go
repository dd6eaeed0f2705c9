package handlers

// Resource page layouts, in sidebar order.

var ClientColumns = []Column{
	{Key: "id", Label: "ID", Display: "id"},
	{Key: "name", Label: "Nombre", Display: "name", Input: "text"},
	{Key: "address", Label: "Dirección", Display: "address", Input: "text"},
	{Key: "phone", Label: "Teléfono", Display: "phone", Input: "text"},
	{Key: "email", Label: "Email", Display: "email", Input: "email"},
	{Key: "classification", Label: "Clasificación", Display: "classification", Input: "text"},
	{Key: "notes", Label: "Notas", Display: "notes", Input: "text"},
}

var EmployeeColumns = []Column{
	{Key: "id", Label: "ID", Display: "id"},
	{Key: "user", Label: "Usuario", Display: "user", Input: "text"},
	{Key: "password", Label: "Contraseña", Input: "password"},
	{Key: "name", Label: "Nombre", Display: "name", Input: "text"},
	{Key: "role", Label: "Rol", Display: "role", Input: "text"},
}

var MachineryColumns = []Column{
	{Key: "id", Label: "ID", Display: "id"},
	{Key: "category", Label: "Categoría", Display: "category", Input: "text"},
	{Key: "description", Label: "Descripción", Display: "description", Input: "text"},
	{Key: "brand", Label: "Marca", Display: "brand", Input: "text"},
	{Key: "quantity", Label: "Cantidad", Display: "quantity", Input: "number"},
}

var SupplyColumns = []Column{
	{Key: "id", Label: "ID", Display: "id"},
	{Key: "description", Label: "Descripción", Display: "description", Input: "text"},
	{Key: "quantity", Label: "Cantidad", Display: "quantity", Input: "number"},
}

var WorkedJobColumns = []Column{
	{Key: "id", Label: "ID", Display: "id"},
	{Key: "service", Label: "Servicio", Display: "service", Input: "text"},
	{Key: "date", Label: "Fecha", Display: "date", Input: "datetime-local"},
	{Key: "clientId", Label: "Cliente", Display: "client.name", Input: "client"},
	{Key: "status", Label: "Estado", Display: "status"},
}
