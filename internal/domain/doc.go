// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/todolist).
// This root package holds sentinel errors, the validation error type, and the
// id allocator shared by lists and todos.
package domain
