// Package commutewise is the trip-planning core of the CommuteWise commuter
// dashboard for the Tandang Sora - Maharlika jeepney route.
//
// The package coordinates four collaborators:
//   - the fixed route and its polyline geometry via the route package
//   - the tiered fare matrix via the fare package
//   - external geocoding/directions providers via the maps package
//   - typed key-value persistence via the store package
//
// A Planner runs one trip session at a time through an explicit state
// machine: a search resolves both endpoints to coordinates, snaps them onto
// the route polyline, requests a routed itinerary through the boarding and
// alighting points, prices the vehicle leg with the fare matrix, and records
// the result in the rider's history and the aggregate stats.
//
// Basic setup:
//
//	kv, _ := store.NewFileKV(cfg.Storage.DataDir)
//	st := store.New(kv)
//	client := maps.NewClient(maps.ClientOptions{APIKey: cfg.Maps.APIKey})
//	planner := commutewise.NewPlanner(st, tracking.NewTracker(st), client, client,
//	    commutewise.Session{Username: "juan", Role: commutewise.RoleUser})
//
//	result, err := planner.Search(ctx, "Tandang Sora Market", "QC City Hall")
//
// Planner instances are not safe for concurrent use; the dashboard drives
// one planner from a single event loop.
package commutewise
