// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/session": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "Current session", "schema": {"$ref": "#/definitions/handlers.SessionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Email not allow-listed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/session/signout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Sign out",
                "responses": {
                    "200": {"description": "Signed out", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/cards": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["cards"],
                "summary": "List cards",
                "responses": {
                    "200": {"description": "Cards", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.CardResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/cards/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["cards"],
                "summary": "Get card",
                "parameters": [{"type": "string", "description": "Card ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Card", "schema": {"$ref": "#/definitions/handlers.CardResponse"}},
                    "404": {"description": "Card not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List transactions",
                "parameters": [{"type": "integer", "description": "Number of transactions (1-100)", "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "Transactions", "schema": {"$ref": "#/definitions/pagination.ListResponse-handlers_TransactionResponse"}},
                    "400": {"description": "Invalid limit", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Create a transaction",
                "parameters": [{"description": "Transaction details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateTransactionRequest"}}],
                "responses": {
                    "201": {"description": "Transaction created", "schema": {"$ref": "#/definitions/handlers.TransactionResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Card belongs to another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Card not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Get transaction",
                "parameters": [{"type": "string", "description": "Transaction ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Transaction", "schema": {"$ref": "#/definitions/handlers.TransactionResponse"}},
                    "404": {"description": "Transaction not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Delete transaction",
                "parameters": [{"type": "string", "description": "Transaction ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Transaction deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "404": {"description": "Transaction not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard",
                "responses": {
                    "200": {"description": "Dashboard", "schema": {"$ref": "#/definitions/handlers.DashboardResponse"}}
                }
            }
        },
        "/dashboard/spending.png": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["image/png"],
                "tags": ["dashboard"],
                "summary": "Spending chart",
                "responses": {
                    "200": {"description": "PNG image", "schema": {"type": "file"}}
                }
            }
        },
        "/receipts": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["receipts"],
                "summary": "Upload a receipt",
                "parameters": [{"type": "file", "description": "Receipt image (image/*, at most 10 MiB)", "name": "receipt", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "Stored image and suggested transaction", "schema": {"$ref": "#/definitions/services.ReceiptResult"}},
                    "400": {"description": "Missing or invalid image", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Upload or extraction failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/receipts/extract": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["receipts"],
                "summary": "Extract receipt fields",
                "parameters": [{"description": "Stored image reference", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ExtractReceiptRequest"}}],
                "responses": {
                    "200": {"description": "Suggested transaction", "schema": {"$ref": "#/definitions/handlers.ExtractionResponse"}},
                    "502": {"description": "Extraction failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/allow-list": {
            "get": {
                "security": [{"AdminKey": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List allow-list",
                "responses": {
                    "200": {"description": "Allow-listed emails", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.AllowedEmailResponse"}}}
                }
            },
            "post": {
                "security": [{"AdminKey": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Allow an email",
                "parameters": [{"description": "Email to allow", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AllowListRequest"}}],
                "responses": {
                    "201": {"description": "Email allowed", "schema": {"$ref": "#/definitions/handlers.AllowedEmailResponse"}},
                    "409": {"description": "Already allowed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/allow-list/{email}": {
            "delete": {
                "security": [{"AdminKey": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Revoke an email",
                "parameters": [{"type": "string", "description": "Email", "name": "email", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Email removed", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "404": {"description": "Email not on the allow-list", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/cards": {
            "post": {
                "security": [{"AdminKey": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Provision a card",
                "parameters": [{"description": "Card details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateCardRequest"}}],
                "responses": {
                    "201": {"description": "Card created", "schema": {"$ref": "#/definitions/handlers.CardResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/handlers.ErrorDetail"}}
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.SessionResponse": {
            "type": "object",
            "properties": {"user_id": {"type": "string"}, "email": {"type": "string"}, "expires_at": {"type": "string"}}
        },
        "handlers.CardResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "balance": {"type": "integer"},
                "balance_decimal": {"type": "string"},
                "last_four": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "handlers.TransactionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "card_id": {"type": "string"},
                "date": {"type": "string", "example": "2026-10-18"},
                "description": {"type": "string"},
                "amount": {"type": "integer", "example": -499},
                "amount_decimal": {"type": "string", "example": "-4.99"},
                "category": {"type": "string", "example": "food"},
                "created_at": {"type": "string"}
            }
        },
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "required": ["amount", "card_id", "category", "date", "description"],
            "properties": {
                "date": {"type": "string", "example": "2026-10-18"},
                "description": {"type": "string", "maxLength": 500, "example": "Coffee Shop Purchase"},
                "amount": {"type": "string", "example": "-4.99"},
                "category": {"type": "string", "enum": ["food", "shopping", "transportation", "entertainment", "utilities", "health", "income", "other"]},
                "card_id": {"type": "string"}
            }
        },
        "handlers.DashboardResponse": {
            "type": "object",
            "properties": {
                "total_balance": {"type": "integer"},
                "total_balance_decimal": {"type": "string"},
                "monthly_spending": {"type": "integer"},
                "monthly_spending_decimal": {"type": "string"},
                "runway": {"type": "number"},
                "month_start": {"type": "string"},
                "cards": {"type": "array", "items": {"$ref": "#/definitions/handlers.CardResponse"}},
                "recent_transactions": {"type": "array", "items": {"$ref": "#/definitions/handlers.TransactionResponse"}},
                "spending_by_category": {"type": "array", "items": {"$ref": "#/definitions/aggregate.CategorySpend"}}
            }
        },
        "pagination.ListResponse-handlers_TransactionResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handlers.TransactionResponse"}},
                "limit": {"type": "integer"}
            }
        },
        "aggregate.CategorySpend": {
            "type": "object",
            "properties": {"category": {"type": "string"}, "amount": {"type": "integer"}}
        },
        "intake.Extraction": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "description": {"type": "string"},
                "amount": {"type": "string"},
                "category": {"type": "string"},
                "card_id": {"type": "string"}
            }
        },
        "services.ReceiptResult": {
            "type": "object",
            "properties": {
                "image_url": {"type": "string"},
                "extraction": {"$ref": "#/definitions/intake.Extraction"}
            }
        },
        "handlers.ExtractReceiptRequest": {
            "type": "object",
            "required": ["image_url"],
            "properties": {"image_url": {"type": "string"}}
        },
        "handlers.ExtractionResponse": {
            "type": "object",
            "properties": {"extraction": {"$ref": "#/definitions/intake.Extraction"}}
        },
        "handlers.AllowListRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string"}}
        },
        "handlers.AllowedEmailResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "created_at": {"type": "string"}}
        },
        "handlers.CreateCardRequest": {
            "type": "object",
            "required": ["last_four", "name", "user_id"],
            "properties": {
                "user_id": {"type": "string"},
                "name": {"type": "string", "maxLength": 100},
                "last_four": {"type": "string", "example": "4242"},
                "opening_balance": {"type": "string", "example": "1500.00"}
            }
        }
    },
    "securityDefinitions": {
        "AdminKey": {"type": "apiKey", "name": "X-Admin-Key", "in": "header"},
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the identity provider's access token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fintrack API",
	Description:      "Personal finance tracker: cards, a signed transaction ledger, a spending dashboard and receipt intake, behind an email allow-list.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
