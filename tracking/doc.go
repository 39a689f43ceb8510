// Package tracking accumulates aggregate usage statistics (search counts,
// simulated revenue, destination frequency, hourly activity) for the admin
// analytics panel.
package tracking
