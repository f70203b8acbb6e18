// Package docs registers the OpenAPI document served under /swagger.
//
// Regenerate after changing handler annotations:
//
//	swag init --v3.1 -g cmd/server/main.go -o docs --parseInternal
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "servers": [{"url": "{{.BasePath}}"}],
    "tags": [
        {"name": "customers"},
        {"name": "transactions"},
        {"name": "jobs"},
        {"name": "dashboard"},
        {"name": "system"}
    ],
    "paths": {
        "/customers": {
            "get": {"operationId": "listCustomers", "tags": ["customers"], "summary": "List customers",
                "parameters": [
                    {"$ref": "#/components/parameters/search"},
                    {"$ref": "#/components/parameters/page"},
                    {"$ref": "#/components/parameters/pageSize"}
                ],
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "400": {"$ref": "#/components/responses/Error"}}},
            "post": {"operationId": "createCustomer", "tags": ["customers"], "summary": "Create a new customer",
                "parameters": [{"$ref": "#/components/parameters/idempotencyKey"}],
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CustomerRequest"}}}},
                "responses": {"201": {"$ref": "#/components/responses/Success"}, "400": {"$ref": "#/components/responses/Error"}, "409": {"$ref": "#/components/responses/Error"}}}
        },
        "/customers/{id}": {
            "parameters": [{"$ref": "#/components/parameters/id"}],
            "get": {"operationId": "getCustomerById", "tags": ["customers"], "summary": "Get customer by ID",
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "404": {"$ref": "#/components/responses/Error"}}},
            "put": {"operationId": "updateCustomer", "tags": ["customers"], "summary": "Update a customer",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CustomerRequest"}}}},
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "400": {"$ref": "#/components/responses/Error"}, "404": {"$ref": "#/components/responses/Error"}}},
            "delete": {"operationId": "deleteCustomer", "tags": ["customers"], "summary": "Delete a customer without transactions or jobs",
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "400": {"$ref": "#/components/responses/Error"}, "404": {"$ref": "#/components/responses/Error"}}}
        },
        "/customers/{id}/balance": {
            "parameters": [{"$ref": "#/components/parameters/id"}],
            "get": {"operationId": "getCustomerBalance", "tags": ["customers"], "summary": "Get customer balance",
                "responses": {"200": {"$ref": "#/components/responses/Success"}}}
        },
        "/customers/{id}/statement": {
            "parameters": [{"$ref": "#/components/parameters/id"}],
            "get": {"operationId": "getCustomerStatement", "tags": ["customers"], "summary": "Get customer statement",
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "404": {"$ref": "#/components/responses/Error"}}}
        },
        "/transactions": {
            "get": {"operationId": "listTransactions", "tags": ["transactions"], "summary": "List transactions",
                "parameters": [
                    {"name": "customer_id", "in": "query", "schema": {"type": "string", "format": "uuid"}},
                    {"name": "date_from", "in": "query", "schema": {"type": "string", "format": "date"}},
                    {"name": "date_to", "in": "query", "schema": {"type": "string", "format": "date"}},
                    {"$ref": "#/components/parameters/page"},
                    {"$ref": "#/components/parameters/pageSize"}
                ],
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "400": {"$ref": "#/components/responses/Error"}}},
            "post": {"operationId": "createTransaction", "tags": ["transactions"], "summary": "Book a transaction",
                "parameters": [{"$ref": "#/components/parameters/idempotencyKey"}],
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TransactionRequest"}}}},
                "responses": {"201": {"$ref": "#/components/responses/Success"}, "400": {"$ref": "#/components/responses/Error"}, "404": {"$ref": "#/components/responses/Error"}, "409": {"$ref": "#/components/responses/Error"}}}
        },
        "/transactions/{id}": {
            "parameters": [{"$ref": "#/components/parameters/id"}],
            "get": {"operationId": "getTransactionById", "tags": ["transactions"], "summary": "Get transaction by ID",
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "404": {"$ref": "#/components/responses/Error"}}},
            "put": {"operationId": "updateTransaction", "tags": ["transactions"], "summary": "Update a transaction",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TransactionRequest"}}}},
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "400": {"$ref": "#/components/responses/Error"}, "404": {"$ref": "#/components/responses/Error"}}},
            "delete": {"operationId": "deleteTransaction", "tags": ["transactions"], "summary": "Delete a transaction",
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "404": {"$ref": "#/components/responses/Error"}}}
        },
        "/jobs": {
            "get": {"operationId": "listJobs", "tags": ["jobs"], "summary": "List jobs",
                "parameters": [
                    {"$ref": "#/components/parameters/status"},
                    {"name": "customer_id", "in": "query", "schema": {"type": "string", "format": "uuid"}},
                    {"$ref": "#/components/parameters/page"},
                    {"$ref": "#/components/parameters/pageSize"}
                ],
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "400": {"$ref": "#/components/responses/Error"}}},
            "post": {"operationId": "createJob", "tags": ["jobs"], "summary": "Open a job",
                "parameters": [{"$ref": "#/components/parameters/idempotencyKey"}],
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/JobRequest"}}}},
                "responses": {"201": {"$ref": "#/components/responses/Success"}, "400": {"$ref": "#/components/responses/Error"}, "404": {"$ref": "#/components/responses/Error"}, "409": {"$ref": "#/components/responses/Error"}}}
        },
        "/jobs/{id}": {
            "parameters": [{"$ref": "#/components/parameters/id"}],
            "get": {"operationId": "getJobById", "tags": ["jobs"], "summary": "Get job by ID",
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "404": {"$ref": "#/components/responses/Error"}}},
            "put": {"operationId": "updateJob", "tags": ["jobs"], "summary": "Update a job",
                "parameters": [{"$ref": "#/components/parameters/status"}],
                "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/JobRequest"}}}},
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "400": {"$ref": "#/components/responses/Error"}, "404": {"$ref": "#/components/responses/Error"}}},
            "delete": {"operationId": "deleteJob", "tags": ["jobs"], "summary": "Delete a job",
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "404": {"$ref": "#/components/responses/Error"}}}
        },
        "/jobs/{id}/status": {
            "parameters": [{"$ref": "#/components/parameters/id"}],
            "put": {"operationId": "updateJobStatus", "tags": ["jobs"], "summary": "Change job status",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {
                    "type": "object", "required": ["status"],
                    "properties": {"status": {"$ref": "#/components/schemas/JobStatus"}}}}}},
                "responses": {"200": {"$ref": "#/components/responses/Success"}, "400": {"$ref": "#/components/responses/Error"}, "404": {"$ref": "#/components/responses/Error"}}}
        },
        "/dashboard": {
            "get": {"operationId": "getDashboard", "tags": ["dashboard"], "summary": "Get dashboard statistics",
                "responses": {"200": {"$ref": "#/components/responses/Success"}}}
        },
        "/system/info": {
            "get": {"operationId": "getSystemSystemInfo", "tags": ["system"], "summary": "Get system information",
                "responses": {"200": {"$ref": "#/components/responses/Success"}}}
        },
        "/system/ping": {
            "get": {"operationId": "pingSystem", "tags": ["system"], "summary": "Ping the API",
                "responses": {"200": {"$ref": "#/components/responses/Success"}}}
        }
    },
    "components": {
        "parameters": {
            "id": {"name": "id", "in": "path", "required": true, "schema": {"type": "string", "format": "uuid"}},
            "page": {"name": "page", "in": "query", "schema": {"type": "integer", "minimum": 1, "default": 1}},
            "pageSize": {"name": "page_size", "in": "query", "schema": {"type": "integer", "minimum": 1, "maximum": 100, "default": 20}},
            "search": {"name": "search", "in": "query", "schema": {"type": "string"}},
            "status": {"name": "status", "in": "query", "schema": {"$ref": "#/components/schemas/JobStatus"}},
            "idempotencyKey": {"name": "Idempotency-Key", "in": "header", "schema": {"type": "string", "maxLength": 255}}
        },
        "responses": {
            "Success": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}},
            "Error": {"description": "Error", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Envelope"}}}}
        },
        "schemas": {
            "JobStatus": {"type": "string", "enum": ["in_progress", "completed", "delivered"]},
            "Decimal": {"type": "string", "pattern": "^-?[0-9]+(\\.[0-9]+)?$", "examples": ["10.500"]},
            "CustomerRequest": {"type": "object", "required": ["name"], "properties": {
                "name": {"type": "string", "maxLength": 200},
                "phone": {"type": "string", "maxLength": 50},
                "notes": {"type": "string", "maxLength": 2000}}},
            "TransactionRequest": {"type": "object", "required": ["work_description"], "properties": {
                "customer_id": {"type": "string", "format": "uuid"},
                "date": {"type": "string", "format": "date"},
                "work_description": {"type": "string", "maxLength": 500},
                "gold_in": {"$ref": "#/components/schemas/Decimal"},
                "gold_out": {"$ref": "#/components/schemas/Decimal"},
                "cash_in": {"$ref": "#/components/schemas/Decimal"},
                "labour_charge": {"$ref": "#/components/schemas/Decimal"},
                "remarks": {"type": "string", "maxLength": 2000}}},
            "JobRequest": {"type": "object", "properties": {
                "customer_id": {"type": "string", "format": "uuid"},
                "work_description": {"type": "string", "maxLength": 500},
                "status": {"$ref": "#/components/schemas/JobStatus"},
                "expected_delivery": {"type": "string", "format": "date"}}},
            "ErrorInfo": {"type": "object", "properties": {
                "code": {"type": "string", "examples": ["ERR_NOT_FOUND"]},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"},
                "details": {"type": "array", "items": {"type": "object", "properties": {
                    "field": {"type": "string"}, "message": {"type": "string"}}}}}},
            "Meta": {"type": "object", "properties": {
                "total": {"type": "integer"}, "page": {"type": "integer"},
                "page_size": {"type": "integer"}, "total_pages": {"type": "integer"}}},
            "Envelope": {"type": "object", "required": ["success"], "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"$ref": "#/components/schemas/ErrorInfo"},
                "meta": {"$ref": "#/components/schemas/Meta"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Goldsmith Ledger API",
	Description:      "Customer ledger of gold and cash movements with workshop job tracking",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
