// Package account contains the User aggregate and the role model used for
// authentication and role-based authorization.
package account
