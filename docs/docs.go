// Package docs registers the OpenAPI description served at /swagger/*any.
// Keep it in step with the godoc annotations in internal/api/handler.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "https://github.com/guttosm/frholidays",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/guttosm/frholidays",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/business-days": {
            "get": {
                "description": "Business days (Mon-Fri, not a bank holiday) ending at \"from\" inclusive, most recent first.",
                "produces": ["application/json"],
                "tags": ["business-days"],
                "summary": "Last N business days",
                "parameters": [
                    {"type": "string", "example": "2021-05-15", "description": "End date, default today", "name": "from", "in": "query"},
                    {"type": "integer", "example": 5, "description": "How many (1-31), default 5", "name": "n", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"$ref": "#/definitions/dto.BusinessDaysResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/business-days/add": {
            "get": {
                "description": "Moves n business days from \"from\" (backwards when n is negative) and lists the weekday holidays skipped.",
                "produces": ["application/json"],
                "tags": ["business-days"],
                "summary": "Move N business days",
                "parameters": [
                    {"type": "string", "example": "2021-05-12", "description": "Start date, default today", "name": "from", "in": "query"},
                    {"type": "integer", "example": 2, "description": "Business days, -260 to 260", "name": "n", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"$ref": "#/definitions/models.BusinessShift"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/business-days/next": {
            "get": {
                "produces": ["application/json"],
                "tags": ["business-days"],
                "summary": "Next business day",
                "parameters": [
                    {"type": "string", "example": "2021-05-12", "description": "Start date (exclusive), default today", "name": "from", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"$ref": "#/definitions/dto.BusinessDaysResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/catalog": {
            "get": {
                "description": "Every holiday rule known to the engine, in catalog order.",
                "produces": ["application/json"],
                "tags": ["holidays"],
                "summary": "Holiday catalog",
                "responses": {
                    "200": {"description": "Success", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CatalogEntry"}}}
                }
            }
        },
        "/api/v1/easter": {
            "get": {
                "produces": ["application/json"],
                "tags": ["holidays"],
                "summary": "Easter Sunday",
                "parameters": [
                    {"type": "integer", "example": 2021, "description": "Year", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"$ref": "#/definitions/dto.EasterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/holidays": {
            "get": {
                "description": "Returns every French bank holiday observed in the year, in chronological order. Defaults to the current year.",
                "produces": ["application/json"],
                "tags": ["holidays"],
                "summary": "List bank holidays of a year",
                "parameters": [
                    {"type": "integer", "example": 2021, "description": "Year", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"$ref": "#/definitions/dto.YearResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/holidays/check": {
            "get": {
                "description": "Accepts YYYY-MM-DD, a bare YYYY (January 1) or an RFC 3339 timestamp, normalised to the configured timezone. Defaults to today.",
                "produces": ["application/json"],
                "tags": ["holidays"],
                "summary": "Is a date a bank holiday?",
                "parameters": [
                    {"type": "string", "example": "2021-05-08", "description": "Date", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"$ref": "#/definitions/dto.CheckResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/holidays/range": {
            "get": {
                "description": "Returns the holidays of every year in [from, to]; at most 200 years.",
                "produces": ["application/json"],
                "tags": ["holidays"],
                "summary": "List bank holidays of several years",
                "parameters": [
                    {"type": "integer", "example": 2020, "description": "First year", "name": "from", "in": "query", "required": true},
                    {"type": "integer", "example": 2022, "description": "Last year", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"$ref": "#/definitions/dto.RangeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/holidays/{key}": {
            "get": {
                "description": "Returns the date a catalog holiday falls on in the year and whether it was observed that year.",
                "produces": ["application/json"],
                "tags": ["holidays"],
                "summary": "Date of one holiday",
                "parameters": [
                    {"type": "string", "example": "whit-monday", "description": "Holiday key", "name": "key", "in": "path", "required": true},
                    {"type": "integer", "example": 2021, "description": "Year", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Success", "schema": {"$ref": "#/definitions/models.NamedHoliday"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Unknown holiday", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Always returns OK if the service is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Returns ready if the holiday engine passes its self-check",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.BusinessDaysResponse": {
            "type": "object",
            "properties": {
                "days": {"type": "array", "items": {"type": "string"}},
                "from": {"type": "string", "example": "2021-05-15"}
            }
        },
        "dto.CatalogEntry": {
            "type": "object",
            "properties": {
                "easter_offset": {"type": "integer", "example": 39},
                "french_name": {"type": "string", "example": "Jeudi de l'Ascension"},
                "key": {"type": "string", "example": "ascension-thursday"},
                "movable": {"type": "boolean", "example": true},
                "name": {"type": "string", "example": "Ascension Thursday"}
            }
        },
        "dto.CheckResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2021-05-08"},
                "holiday": {"$ref": "#/definitions/models.Holiday"},
                "is_holiday": {"type": "boolean", "example": true}
            }
        },
        "dto.EasterResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2021-04-04"},
                "year": {"type": "integer", "example": 2021}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid date input: year \"20x1\" is not an integer"},
                "message": {"type": "string", "example": "invalid year"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.RangeResponse": {
            "type": "object",
            "properties": {
                "from": {"type": "integer", "example": 2020},
                "to": {"type": "integer", "example": 2022},
                "years": {"type": "array", "items": {"$ref": "#/definitions/dto.YearResponse"}}
            }
        },
        "dto.YearResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer", "example": 11},
                "holidays": {"type": "array", "items": {"$ref": "#/definitions/models.Holiday"}},
                "year": {"type": "integer", "example": 2021}
            }
        },
        "models.BusinessShift": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2021-05-17"},
                "from": {"type": "string", "example": "2021-05-12"},
                "n": {"type": "integer", "example": 2},
                "skipped": {"type": "array", "items": {"$ref": "#/definitions/models.Closure"}}
            }
        },
        "models.Closure": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2021-05-13"},
                "name": {"type": "string", "example": "Ascension Thursday"}
            }
        },
        "models.Holiday": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2021-05-24"},
                "french_name": {"type": "string", "example": "Lundi de Pentecôte"},
                "key": {"type": "string", "example": "whit-monday"},
                "movable": {"type": "boolean", "example": true},
                "name": {"type": "string", "example": "Whit Monday"}
            }
        },
        "models.NamedHoliday": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2021-05-24"},
                "french_name": {"type": "string", "example": "Lundi de Pentecôte"},
                "key": {"type": "string", "example": "whit-monday"},
                "movable": {"type": "boolean", "example": true},
                "name": {"type": "string", "example": "Whit Monday"},
                "observed": {"type": "boolean", "example": true},
                "year": {"type": "integer", "example": 2021}
            }
        }
    },
    "tags": [
        {"description": "French bank holidays", "name": "holidays"},
        {"description": "Working-day arithmetic", "name": "business-days"},
        {"description": "Liveness and readiness probes", "name": "health"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "frholidays API",
	Description:      "French bank holidays: yearly calendars, membership checks and business days.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
