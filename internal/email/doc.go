// Package email sends the transactional messages triggered by a signup:
// a welcome email to the new member and a notification to the community
// admins. Delivery is Postmark in production and a logging sender in
// development. Callers treat sending as best-effort; a failed email never
// fails the signup itself.
package email
