package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Alumni Network Admin Gateway",
        "description": "Proxy gateway for the alumni-network admin dashboard",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Admin session lifecycle"},
        {"name": "Dashboard", "description": "Aggregate dashboard summary"},
        {"name": "Analytics", "description": "Per-resource analytics aggregates"},
        {"name": "Alumni", "description": "Alumni verification management"},
        {"name": "Users", "description": "User administration"},
        {"name": "Events", "description": "Event management"},
        {"name": "Jobs", "description": "Job posting management"},
        {"name": "Referrals", "description": "Referral management"},
        {"name": "Contacts", "description": "Contact query handling"},
        {"name": "Views", "description": "Per-session list filter state"},
        {"name": "Export", "description": "Downloadable list reports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate an admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Not an admin", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "End the current session",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current session identity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "No session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/admin/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Admin dashboard summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/admin/{resource}-analytics": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Resource analytics aggregates",
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/alumni": {
            "get": {
                "tags": ["Alumni"],
                "summary": "List alumni records",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "batch", "in": "query", "type": "string"},
                    {"name": "department", "in": "query", "type": "string"},
                    {"name": "verified", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/alumni/{id}": {
            "put": {
                "tags": ["Alumni"],
                "summary": "Verify or revoke an alumni record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AlumniVerifyPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Alumni"],
                "summary": "Delete an alumni record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "role", "in": "query", "type": "string"},
                    {"name": "batch", "in": "query", "type": "string"},
                    {"name": "department", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/users/{id}": {
            "put": {
                "tags": ["Users"],
                "summary": "Update a user as admin",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AdminUserUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete a user",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "type", "in": "query", "type": "string"},
                    {"name": "startDate", "in": "query", "type": "string"},
                    {"name": "endDate", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create an event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/events/{id}": {
            "put": {
                "tags": ["Events"],
                "summary": "Update an event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Delete an event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/jobs": {
            "get": {
                "tags": ["Jobs"],
                "summary": "List job postings",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "type", "in": "query", "type": "string"},
                    {"name": "workType", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Jobs"],
                "summary": "Create a job posting",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/JobPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/jobs/{id}": {
            "put": {
                "tags": ["Jobs"],
                "summary": "Update a job posting",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/JobPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Jobs"],
                "summary": "Delete a job posting",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/referrals": {
            "get": {
                "tags": ["Referrals"],
                "summary": "List referrals",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "minReferrals", "in": "query", "type": "integer"},
                    {"name": "maxReferrals", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Referrals"],
                "summary": "Create a referral",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReferralPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/referrals/{id}": {
            "put": {
                "tags": ["Referrals"],
                "summary": "Update a referral",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReferralPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Referrals"],
                "summary": "Delete a referral",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/contactus": {
            "get": {
                "tags": ["Contacts"],
                "summary": "List contact queries",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "resolved", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Contacts"],
                "summary": "Respond to a contact query",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ContactResponsePayload"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/views/{resource}/filters": {
            "get": {
                "tags": ["Views"],
                "summary": "Read the filter state for a resource",
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Views"],
                "summary": "Stage draft filter values",
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/views/{resource}/filters/apply": {
            "post": {
                "tags": ["Views"],
                "summary": "Commit the draft filters",
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/views/{resource}/filters/clear": {
            "post": {
                "tags": ["Views"],
                "summary": "Reset filters to defaults",
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/export/{resource}": {
            "get": {
                "tags": ["Export"],
                "summary": "Export a resource list as a report",
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "required": true, "type": "string", "enum": ["csv", "json", "pdf"]},
                    {"name": "scope", "in": "query", "type": "string", "enum": ["current", "all"]}
                ],
                "responses": {
                    "200": {"description": "Report file"},
                    "400": {"description": "Invalid format or scope", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Export exceeds the row ceiling", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "identifier": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "AlumniVerifyPayload": {
            "type": "object",
            "properties": {
                "verified": {"type": "boolean"}
            }
        },
        "AdminUserUpdate": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "verified": {"type": "boolean"},
                "department": {"type": "string"},
                "batch": {"type": "integer"},
                "collegeEmail": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "EventPayload": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "venue": {"type": "string"},
                "content": {"type": "string"},
                "type": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "imageUrl": {"type": "string"},
                "links": {"type": "array", "items": {"type": "string"}}
            }
        },
        "JobPayload": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "company": {"type": "string"},
                "role": {"type": "string"},
                "type": {"type": "string"},
                "workType": {"type": "string"},
                "links": {"type": "array", "items": {"type": "string"}},
                "eligibility": {
                    "type": "object",
                    "properties": {
                        "requirements": {"type": "array", "items": {"type": "string"}},
                        "batch": {"type": "array", "items": {"type": "integer"}}
                    }
                }
            }
        },
        "ReferralPayload": {
            "type": "object",
            "properties": {
                "jobDetails": {
                    "type": "object",
                    "properties": {
                        "title": {"type": "string"},
                        "description": {"type": "string"},
                        "company": {"type": "string"},
                        "role": {"type": "string"},
                        "link": {"type": "string"}
                    }
                },
                "lastApplyDate": {"type": "string"},
                "numberOfReferrals": {"type": "number"}
            }
        },
        "ContactResponsePayload": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "subject": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "currentPage": {"type": "integer"},
                "perPage": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
