/*
Package actions maps stable names to action kinds, so actions recorded as loose
data (YAML scripts, JSON logs) can be turned back into typed values and dispatched.

Payload fields are decoded with mapstructure; action structs can use
`mapstructure:"..."` tags to rename fields. Unknown payload keys are rejected.
*/
package actions
