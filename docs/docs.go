// Package docs holds the OpenAPI document of the ledger HTTP API, in the form
// produced by swag from the annotations in webapi/account and cmd/server.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/accounts": {
            "post": {
                "description": "Opens an empty account for an existing actor. The currency defaults to DKK.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Create a new account",
                "parameters": [
                    {
                        "description": "Account owner and currency",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/account.CreateAccountRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Account created",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/queries.AccountCreated"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Actor not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/v1/accounts/{id}/balance": {
            "get": {
                "description": "Returns the current balance, currency and number of the account.",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get account balance",
                "parameters": [
                    {"type": "string", "description": "Account ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Balance fetched",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {"$ref": "#/definitions/queries.Balance"}
                                    }
                                }
                            ]
                        }
                    },
                    "400": {"description": "Invalid account ID", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/v1/accounts/{id}/deposits": {
            "post": {
                "description": "Adds the amount to the account balance. A zero amount is accepted and changes nothing.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Deposit funds into an account",
                "parameters": [
                    {"type": "string", "description": "Account ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Amount to deposit",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/account.DepositRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "Deposited"},
                    "400": {"description": "Invalid request, amount or currency", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        },
        "/api/v1/accounts/{id}/transfers": {
            "post": {
                "description": "Withdraws the amount from the account in the path and deposits it into the destination, atomically.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Transfer funds between accounts",
                "parameters": [
                    {"type": "string", "description": "Source account ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Destination and amount",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/account.TransferRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "Transferred"},
                    "400": {"description": "Invalid request, amount or currency", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "422": {"description": "Insufficient funds", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/common.ProblemDetails"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/common.ProblemDetails"}}
                }
            }
        }
    },
    "definitions": {
        "account.AmountDto": {
            "type": "object",
            "required": ["currency", "value"],
            "properties": {
                "currency": {"type": "string", "example": "DKK"},
                "value": {"type": "string", "example": "100.50"}
            }
        },
        "account.CreateAccountRequest": {
            "type": "object",
            "required": ["owner_id"],
            "properties": {
                "currency": {"type": "string", "example": "DKK"},
                "owner_id": {"type": "string", "format": "uuid"}
            }
        },
        "account.DepositRequest": {
            "type": "object",
            "properties": {
                "amount": {"$ref": "#/definitions/account.AmountDto"}
            }
        },
        "account.TransferRequest": {
            "type": "object",
            "required": ["to_account_id"],
            "properties": {
                "amount": {"$ref": "#/definitions/account.AmountDto"},
                "to_account_id": {"type": "string", "format": "uuid"}
            }
        },
        "common.ProblemDetails": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {},
                "instance": {"type": "string"},
                "status": {"type": "integer"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "common.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "money.Amount": {
            "type": "object",
            "properties": {
                "currency": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "queries.AccountCreated": {
            "type": "object",
            "properties": {
                "account_number": {"type": "string"},
                "balance": {"$ref": "#/definitions/money.Amount"},
                "currency": {"type": "string"},
                "id": {"type": "string", "format": "uuid"},
                "owner_id": {"type": "string", "format": "uuid"}
            }
        },
        "queries.Balance": {
            "type": "object",
            "properties": {
                "account_id": {"type": "string", "format": "uuid"},
                "account_number": {"type": "string"},
                "balance": {"$ref": "#/definitions/money.Amount"},
                "currency": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Ledger API",
	Description:      "Accounts, deposits and transfers with strict currency and balance rules.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
