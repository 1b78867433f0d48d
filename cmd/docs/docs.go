// Package docs holds the Swagger document served under /swagger.
// Keep it in sync with the godoc annotations of the handlers package.
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
        "/": {
            "get": {
                "description": "get the status of server.",
                "consumes": ["*/*"],
                "produces": ["application/json"],
                "tags": ["root"],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["root"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/rates/current": {
            "get": {
                "description": "Returns the cached snapshot while fresh, otherwise refreshes it from the remote source. Never fails: a fallback rate is served when the source is unavailable.",
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Get the current USD/VND rate",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CurrentRateResponse"}}
                }
            }
        },
        "/rates/history": {
            "get": {
                "description": "Returns exactly days daily samples, oldest first. Remote history is limited to 31 days.",
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Get daily USD/VND history",
                "parameters": [
                    {"maximum": 365, "minimum": 1, "type": "integer", "description": "Number of days (default 7, at most 31 with source=remote)", "name": "days", "in": "query"},
                    {"enum": ["local", "remote"], "type": "string", "description": "local or remote (default local)", "name": "source", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RateHistoryResponse"}},
                    "400": {"description": "Invalid query parameters or remote window too long", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/currencies": {
            "get": {
                "description": "Retrieves the currencies of the conversion rate table, unit currency first",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List supported currencies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListCurrenciesResponse"}}
                }
            }
        },
        "/conversions/rate": {
            "get": {
                "description": "Returns the factor converting one unit of from into to. Unsupported codes yield 1.",
                "produces": ["application/json"],
                "tags": ["conversions"],
                "summary": "Get a static conversion rate",
                "parameters": [
                    {"maxLength": 3, "minLength": 3, "type": "string", "description": "From Currency Code (3 letters)", "name": "from", "in": "query", "required": true},
                    {"maxLength": 3, "minLength": 3, "type": "string", "description": "To Currency Code (3 letters)", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ConversionRateResponse"}},
                    "400": {"description": "Invalid currency code format", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/conversions/preview": {
            "post": {
                "description": "Derives the rate, the unrounded converted amount and their display strings",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["conversions"],
                "summary": "Preview a wallet conversion",
                "parameters": [
                    {"description": "Conversion input", "name": "conversion", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ConversionPreviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ConversionPreviewResponse"}},
                    "400": {"description": "Invalid input format or validation error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/format/money": {
            "get": {
                "description": "Renders an amount in the display convention of a currency.",
                "produces": ["application/json"],
                "tags": ["conversions"],
                "summary": "Format an amount",
                "parameters": [
                    {"type": "number", "description": "Amount", "name": "amount", "in": "query"},
                    {"type": "string", "description": "Currency code (default VND)", "name": "currency", "in": "query"},
                    {"enum": ["money", "balance"], "type": "string", "description": "money or balance (default money)", "name": "mode", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FormattedMoneyResponse"}},
                    "400": {"description": "Invalid query parameters", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/settings/date-format": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get the date format",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DateFormatResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Change the date format",
                "parameters": [
                    {"description": "Date format key", "name": "format", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateDateFormatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DateFormatResponse"}},
                    "400": {"description": "Unknown date format", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/settings/money-format": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get the money format",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MoneyFormatResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Change the money format",
                "parameters": [
                    {"description": "Money format preset and fraction digits", "name": "format", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateMoneyFormatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MoneyFormatResponse"}},
                    "400": {"description": "Unknown money format or digits out of range", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.CurrentRateResponse": {
            "type": "object",
            "properties": {
                "vndToUsd": {"type": "number"},
                "usdToVnd": {"type": "number"},
                "change": {"type": "number"},
                "changePercent": {"type": "number"},
                "lastUpdate": {"type": "string"},
                "staticVndToUsd": {"type": "number"},
                "discrepancyPercent": {"type": "number"}
            }
        },
        "dto.HistoryPointResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "day": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "dto.RateHistoryResponse": {
            "type": "object",
            "properties": {
                "source": {"type": "string"},
                "days": {"type": "integer"},
                "points": {"type": "array", "items": {"$ref": "#/definitions/dto.HistoryPointResponse"}}
            }
        },
        "dto.CurrencyResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "symbol": {"type": "string"},
                "fraction": {"type": "integer"},
                "perUnit": {"type": "number"},
                "unitsPer": {"type": "number"},
                "isUnit": {"type": "boolean"}
            }
        },
        "dto.ListCurrenciesResponse": {
            "type": "object",
            "properties": {
                "unitCurrency": {"type": "string"},
                "currencies": {"type": "array", "items": {"$ref": "#/definitions/dto.CurrencyResponse"}}
            }
        },
        "dto.ConversionRateResponse": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "to": {"type": "string"},
                "rate": {"type": "number"},
                "formattedRate": {"type": "string"},
                "supported": {"type": "boolean"}
            }
        },
        "dto.ConversionPreviewRequest": {
            "type": "object",
            "required": ["fromCurrency", "toCurrency"],
            "properties": {
                "fromCurrency": {"type": "string"},
                "toCurrency": {"type": "string"},
                "amount": {"type": "number"}
            }
        },
        "dto.ConversionPreviewResponse": {
            "type": "object",
            "properties": {
                "fromCurrency": {"type": "string"},
                "toCurrency": {"type": "string"},
                "amount": {"type": "number"},
                "rate": {"type": "number"},
                "convertedAmount": {"type": "number"},
                "supported": {"type": "boolean"},
                "formattedAmount": {"type": "string"},
                "formattedConverted": {"type": "string"},
                "formattedRate": {"type": "string"}
            }
        },
        "dto.FormattedMoneyResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "currency": {"type": "string"},
                "mode": {"type": "string"},
                "formatted": {"type": "string"}
            }
        },
        "dto.DateFormatResponse": {
            "type": "object",
            "properties": {
                "format": {"type": "string"},
                "example": {"type": "string"},
                "options": {"type": "array", "items": {"type": "object"}}
            }
        },
        "dto.UpdateDateFormatRequest": {
            "type": "object",
            "required": ["format"],
            "properties": {
                "format": {"type": "string"}
            }
        },
        "dto.MoneyFormatResponse": {
            "type": "object",
            "properties": {
                "format": {"type": "string"},
                "thousand": {"type": "string"},
                "decimal": {"type": "string"},
                "decimalDigits": {"type": "integer"},
                "example": {"type": "string"},
                "options": {"type": "array", "items": {"type": "object"}}
            }
        },
        "dto.UpdateMoneyFormatRequest": {
            "type": "object",
            "required": ["format", "decimalDigits"],
            "properties": {
                "format": {"type": "string"},
                "decimalDigits": {"type": "integer", "minimum": 0, "maximum": 8}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Money Rates API",
	Description:      "Currency conversion and USD/VND exchange rate service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
