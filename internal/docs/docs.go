// Package docs holds the hand-maintained OpenAPI document served at /swagger.
// It covers the routes under /api/v1; /api/health sits outside the base path.
// Keep it in step with the handler annotations when routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/signup": {"post": {"tags": ["auth"], "summary": "Register a new user", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.SignupRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "409": {"description": "Duplicate email", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}}, "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/auth/refresh": {"post": {"tags": ["auth"], "summary": "Refresh tokens", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.RefreshRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/auth/logout": {"post": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Log out", "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}}},
        "/auth/user": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["user"], "summary": "Get user profile", "responses": {"200": {"description": "OK", "schema": {"type": "object", "properties": {"user": {"$ref": "#/definitions/models.User"}}}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["user"], "summary": "Update user profile", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateProfileRequest"}}], "responses": {"200": {"description": "OK", "schema": {"type": "object", "properties": {"user": {"$ref": "#/definitions/models.User"}}}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/budgets": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "List budgets", "responses": {"200": {"description": "OK", "schema": {"type": "object", "properties": {"budgets": {"type": "array", "items": {"$ref": "#/definitions/models.Budget"}}}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Create budget", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateBudgetRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/services.BudgetResult"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "500": {"description": "Storage error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/budgets/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Get budget", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"type": "object", "properties": {"budget": {"$ref": "#/definitions/models.Budget"}}}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["budgets"], "summary": "Delete budget", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/budgets/{id}/transactions": {"post": {"security": [{"BearerAuth": []}], "tags": ["postings"], "summary": "Post transactions", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.PostTransactionsRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/services.PostingResult"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/budgets/{id}/savings": {"post": {"security": [{"BearerAuth": []}], "tags": ["postings"], "summary": "Post saving", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.PostSavingRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/services.PostingResult"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/budgets/{id}/expenses": {"post": {"security": [{"BearerAuth": []}], "tags": ["postings"], "summary": "Post expenses", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.PostExpensesRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/services.PostingResult"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/transactions": {"get": {"security": [{"BearerAuth": []}], "tags": ["postings"], "summary": "List transactions", "responses": {"200": {"description": "OK", "schema": {"type": "object", "properties": {"transactions": {"type": "array", "items": {"$ref": "#/definitions/services.TransactionRecord"}}}}}}}},
        "/savings": {"get": {"security": [{"BearerAuth": []}], "tags": ["postings"], "summary": "List savings", "responses": {"200": {"description": "OK", "schema": {"type": "object", "properties": {"savings": {"type": "array", "items": {"$ref": "#/definitions/services.SavingRecord"}}}}}}}},
        "/notifications": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "List notification preferences", "responses": {"200": {"description": "OK", "schema": {"type": "object", "properties": {"notifications": {"type": "array", "items": {"$ref": "#/definitions/models.Notification"}}}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "Create notification preference", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateNotificationRequest"}}], "responses": {"201": {"description": "Created", "schema": {"type": "object", "properties": {"notification": {"$ref": "#/definitions/models.Notification"}}}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/notifications/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["notifications"], "summary": "Delete notification preference", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/export": {"get": {"security": [{"BearerAuth": []}], "tags": ["export"], "summary": "Export transactions", "produces": ["application/pdf"], "parameters": [{"in": "query", "name": "start_date", "type": "string", "required": true}, {"in": "query", "name": "end_date", "type": "string", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "file"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/admin/users": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["admin"], "summary": "List users", "parameters": [{"in": "query", "name": "page", "type": "integer"}, {"in": "query", "name": "page_size", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/pagination.PageResponse-models_User"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}}
    },
    "parameters": {
        "id": {"in": "path", "name": "id", "type": "integer", "required": true}
    },
    "definitions": {
        "handlers.ErrorDetail": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}}},
        "handlers.ErrorResponse": {"type": "object", "properties": {"error": {"$ref": "#/definitions/handlers.ErrorDetail"}}},
        "handlers.SignupRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string", "minLength": 8}, "first_name": {"type": "string"}, "phone": {"type": "string"}, "currency": {"type": "string"}}},
        "handlers.LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "handlers.RefreshRequest": {"type": "object", "required": ["refresh_token"], "properties": {"refresh_token": {"type": "string"}}},
        "handlers.AuthResponse": {"type": "object", "properties": {"access_token": {"type": "string"}, "refresh_token": {"type": "string"}, "user": {"$ref": "#/definitions/models.User"}}},
        "handlers.UpdateProfileRequest": {"type": "object", "properties": {"phone": {"type": "string"}, "first_name": {"type": "string"}, "gender": {"type": "string"}, "dob": {"type": "string", "example": "1990-05-17"}, "country": {"type": "string"}, "postal_code": {"type": "string"}, "currency": {"type": "string"}}},
        "handlers.CreateBudgetRequest": {"type": "object", "required": ["name", "period", "start_date", "revenues"], "properties": {"name": {"type": "string"}, "period": {"type": "string", "example": "monthly"}, "start_date": {"type": "string", "example": "2024-01-01"}, "revenues": {"type": "array", "items": {"$ref": "#/definitions/services.RevenueInput"}}}},
        "services.RevenueInput": {"type": "object", "properties": {"type": {"type": "string"}, "amount": {"type": "string"}}},
        "handlers.TransactionItem": {"type": "object", "required": ["category"], "properties": {"category": {"type": "string"}, "amount": {"type": "string", "example": "12.50"}, "comment": {"type": "string"}, "date": {"type": "string", "example": "2024-01-31"}}},
        "handlers.PostTransactionsRequest": {"type": "object", "required": ["transactions"], "properties": {"transactions": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/handlers.TransactionItem"}}}},
        "handlers.ExpenseItem": {"type": "object", "required": ["category"], "properties": {"category": {"type": "string"}, "amount": {"type": "string", "example": "800"}}},
        "handlers.PostExpensesRequest": {"type": "object", "required": ["expenses"], "properties": {"expenses": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/handlers.ExpenseItem"}}}},
        "handlers.PostSavingRequest": {"type": "object", "properties": {"amount": {"type": "string", "example": "100"}, "date": {"type": "string", "example": "2024-01-31"}}},
        "models.User": {"type": "object", "properties": {"id": {"type": "integer"}, "email": {"type": "string"}, "phone": {"type": "string"}, "first_name": {"type": "string"}, "gender": {"type": "string"}, "dob": {"type": "string"}, "country": {"type": "string"}, "postal_code": {"type": "string"}, "currency": {"type": "string", "example": "EUR"}, "is_active": {"type": "boolean"}, "last_login_at": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "models.Budget": {"type": "object", "properties": {"id": {"type": "integer"}, "category": {"type": "string"}, "amount": {"type": "string", "example": "1200.00"}, "user_id": {"type": "integer"}, "revenues": {"type": "array", "items": {"$ref": "#/definitions/models.Revenue"}}, "period": {"$ref": "#/definitions/models.Period"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "models.Revenue": {"type": "object", "properties": {"id": {"type": "integer"}, "type": {"type": "string"}, "amount": {"type": "string"}, "user_id": {"type": "integer"}, "budget_id": {"type": "integer"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "models.Period": {"type": "object", "properties": {"id": {"type": "integer"}, "period": {"type": "string", "example": "monthly"}, "start_date": {"type": "string"}, "budget_id": {"type": "integer"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "models.Transaction": {"type": "object", "properties": {"id": {"type": "integer"}, "category": {"type": "string"}, "amount": {"type": "string"}, "budget_id": {"type": "integer"}, "comment": {"type": "string"}, "date": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "models.Expense": {"type": "object", "properties": {"id": {"type": "integer"}, "category": {"type": "string"}, "amount": {"type": "string"}, "budget_id": {"type": "integer"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "models.Saving": {"type": "object", "properties": {"id": {"type": "integer"}, "amount": {"type": "string"}, "date": {"type": "string"}, "budget_id": {"type": "integer"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "models.Notification": {"type": "object", "properties": {"id": {"type": "integer"}, "user_id": {"type": "integer"}, "message": {"type": "string"}, "alert_time": {"type": "string"}, "is_active": {"type": "boolean"}, "device_token": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "services.BudgetResult": {"type": "object", "properties": {"budget": {"$ref": "#/definitions/models.Budget"}, "name": {"type": "string"}, "period": {"type": "string"}, "start_date": {"type": "string"}, "revenues": {"type": "array", "items": {"$ref": "#/definitions/services.RevenueInput"}}}},
        "services.PostingResult": {"type": "object", "properties": {"budget": {"$ref": "#/definitions/models.Budget"}, "total": {"type": "string"}, "transactions": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}, "expenses": {"type": "array", "items": {"$ref": "#/definitions/models.Expense"}}, "saving": {"$ref": "#/definitions/models.Saving"}}},
        "services.TransactionRecord": {"type": "object", "properties": {"id": {"type": "integer"}, "budget_id": {"type": "integer"}, "category": {"type": "string"}, "amount": {"type": "string"}, "comment": {"type": "string"}, "date": {"type": "string"}, "budget_category": {"type": "string"}}},
        "services.SavingRecord": {"type": "object", "properties": {"id": {"type": "integer"}, "budget_id": {"type": "integer"}, "amount": {"type": "string"}, "date": {"type": "string"}, "budget_category": {"type": "string"}}},
        "pagination.PageResponse-models_User": {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/models.User"}}, "page": {"type": "integer"}, "page_size": {"type": "integer"}, "total_items": {"type": "integer"}, "total_pages": {"type": "integer"}}},
        "handlers.CreateNotificationRequest": {"type": "object", "required": ["message"], "properties": {"message": {"type": "string"}, "alert_time": {"type": "string", "example": "20:00"}, "is_active": {"type": "boolean"}, "device_token": {"type": "string"}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"},
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and the access token.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Wisenkap API",
	Description:      "Wisenkap is a personal budgeting service: budgets funded by revenues, with transactions, savings and expenses posted against them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
