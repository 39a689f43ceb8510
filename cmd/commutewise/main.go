package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	commutewise "github.com/commutewise/commutewise"
	"github.com/commutewise/commutewise/chat"
	"github.com/commutewise/commutewise/config"
	"github.com/commutewise/commutewise/fare"
	"github.com/commutewise/commutewise/maps"
	"github.com/commutewise/commutewise/route"
	"github.com/commutewise/commutewise/store"
	"github.com/commutewise/commutewise/tracking"

	"github.com/google/uuid"
)

func main() {
	mode := flag.String("mode", "plan", "plan|history|clear-history|fare|set-fare|stops|add-stop|edit-stop|delete-stop|feedback|send-feedback|resolve-feedback|stats|reset-stats|chat")
	configPath := flag.String("config", "", "path to config.yml (optional)")
	username := flag.String("user", "", "username; empty means guest session")
	role := flag.String("role", "USER", "GUEST|USER|ADMIN")
	discount := flag.String("discount", "", "NONE|STUDENT|PWD|SENIOR_CITIZEN")
	origin := flag.String("origin", "", "origin text, or 'Your Location'")
	destination := flag.String("destination", "", "destination text, or 'Your Location'")
	lat := flag.Float64("lat", 0, "last known device latitude")
	lng := flag.Float64("lng", 0, "last known device longitude")
	asJSON := flag.Bool("json", false, "print results as JSON")

	baseFare := flag.Float64("baseFare", 0, "set-fare: base fare")
	baseKm := flag.Float64("baseKm", 0, "set-fare: base distance in km")
	perKmRate := flag.Float64("perKmRate", 0, "set-fare: succeeding per-km rate")
	discountRate := flag.Float64("discountRate", -1, "set-fare: discount percent (0-100)")

	stopID := flag.String("stop", "", "stop id for edit-stop/delete-stop")
	stopName := flag.String("name", "", "stop name")
	stopDesc := flag.String("description", "", "stop description")
	terminal := flag.Bool("terminal", false, "mark stop as terminal")

	feedbackType := flag.String("type", store.FeedbackBug, "send-feedback: bug|suggestion")
	text := flag.String("text", "", "send-feedback description / chat message")
	feedbackID := flag.String("id", "", "resolve-feedback: feedback id")
	reply := flag.String("reply", "", "resolve-feedback: admin reply")
	flag.Parse()

	commutewise.InitLogging()

	var cfg config.AppConfig
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	} else if loaded, err := config.Load(); err == nil {
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	kv, err := store.NewFileKV(cfg.Storage.DataDir)
	if err != nil {
		fatal(err)
	}
	st := store.New(kv)

	session := commutewise.Session{
		Username: *username,
		Role:     commutewise.Role(*role),
		Discount: fare.ParseDiscountClass(*discount),
	}
	if *username == "" {
		session.Role = commutewise.RoleGuest
	}

	ctx := context.Background()

	switch *mode {
	case "plan":
		if *origin == "" || *destination == "" {
			fatal(fmt.Errorf("plan mode requires -origin and -destination"))
		}
		client := maps.NewClient(maps.ClientOptions{
			APIKey:        cfg.Maps.APIKey,
			GeocodeURL:    cfg.Maps.GeocodeURL,
			DirectionsURL: cfg.Maps.DirectionsURL,
			Region:        cfg.Maps.Region,
			Language:      cfg.Maps.Language,
			Timeout:       time.Duration(cfg.Maps.TimeoutMS) * time.Millisecond,
			CacheTTL:      time.Duration(cfg.Maps.GeocodeCacheTTLMS) * time.Millisecond,
		})
		planner := commutewise.NewPlanner(st, tracking.NewTracker(st), client, client, session)
		if *lat != 0 || *lng != 0 {
			planner.SetLastKnownLocation(route.Coordinate{Lat: *lat, Lng: *lng})
		}
		result, err := planner.Search(ctx, *origin, *destination)
		if err != nil {
			fatal(err)
		}
		if *asJSON {
			printJSON(result)
			return
		}
		fmt.Printf("%s -> %s\n", result.Origin, result.Destination)
		fmt.Printf("  distance: %s\n", result.TotalDistanceText)
		fmt.Printf("  duration: %s\n", result.TotalDurationText)
		fmt.Printf("  fare:     %s\n", result.FareText)
		for i, leg := range result.Legs {
			kind := "jeepney"
			if leg.WalkingDurationText != "" {
				kind = "walk"
			}
			fmt.Printf("  leg %d (%s): %s, %s\n", i+1, kind, leg.DistanceText, leg.DurationText)
		}

	case "history":
		printJSON(st.History(*username))

	case "clear-history":
		if err := st.ClearHistory(*username); err != nil {
			fatal(err)
		}

	case "fare":
		printJSON(st.FareConfig())

	case "set-fare":
		cur := st.FareConfig()
		next := fare.Config{
			BaseFare:            pick(*baseFare, cur.BaseFare),
			BaseDistanceKm:      pick(*baseKm, cur.BaseDistanceKm),
			PerKmRate:           pick(*perKmRate, cur.PerKmRate),
			DiscountRatePercent: cur.DiscountRatePercent,
		}
		if *discountRate >= 0 {
			next.DiscountRatePercent = *discountRate
		}
		if err := st.SaveFareConfig(next); err != nil {
			fatal(err)
		}
		printJSON(next)

	case "stops":
		r := st.Route()
		fmt.Printf("%s (%s), %.1f km\n", r.Name, r.Status, route.PathLengthKM(r.Path))
		for _, s := range r.Stops {
			kind := "stop"
			if s.IsTerminal {
				kind = "terminal"
			}
			fmt.Printf("  [%s] %s (%s) %.5f,%.5f - %s\n", s.ID, s.Name, kind, s.Coords.Lat, s.Coords.Lng, s.Description)
		}

	case "add-stop":
		r := st.Route()
		stop := route.Stop{
			ID:          uuid.NewString(),
			Name:        *stopName,
			Coords:      route.Coordinate{Lat: *lat, Lng: *lng},
			Description: *stopDesc,
			IsTerminal:  *terminal,
		}
		if stop.Name == "" {
			stop.Name = "New Stop"
		}
		if stop.Coords == (route.Coordinate{}) {
			if terms := r.Terminals(); len(terms) > 0 {
				stop.Coords = terms[0].Coords
			}
		}
		r.UpsertStop(stop)
		if err := st.SaveRoute(r); err != nil {
			fatal(err)
		}
		printJSON(stop)

	case "edit-stop":
		r := st.Route()
		stop, ok := r.FindStop(*stopID)
		if !ok {
			fatal(fmt.Errorf("no stop with id %s", *stopID))
		}
		if *stopName != "" {
			stop.Name = *stopName
		}
		if *stopDesc != "" {
			stop.Description = *stopDesc
		}
		if *lat != 0 || *lng != 0 {
			stop.Coords = route.Coordinate{Lat: *lat, Lng: *lng}
		}
		r.UpsertStop(stop)
		if err := st.SaveRoute(r); err != nil {
			fatal(err)
		}
		printJSON(stop)

	case "delete-stop":
		r := st.Route()
		if !r.DeleteStop(*stopID) {
			fatal(fmt.Errorf("no stop with id %s", *stopID))
		}
		if err := st.SaveRoute(r); err != nil {
			fatal(err)
		}

	case "feedback":
		printJSON(st.Feedbacks())

	case "send-feedback":
		item, err := commutewise.SubmitFeedback(st, *username, *feedbackType, *text)
		if err != nil {
			fatal(err)
		}
		printJSON(item)

	case "resolve-feedback":
		if err := commutewise.ResolveFeedback(st, *feedbackID, *reply); err != nil {
			fatal(err)
		}

	case "stats":
		stats := st.LoadStats()
		if *asJSON {
			printJSON(stats)
			return
		}
		fmt.Printf("searches: %d\n", stats.TotalSearches)
		fmt.Printf("revenue:  %s\n", fare.FormatPHP(stats.TotalRevenue))
		for _, dest := range stats.TopDestinations(5) {
			fmt.Printf("  %s: %d\n", dest, stats.TopLocations[dest])
		}
		if h := stats.BusiestHour(); h >= 0 {
			fmt.Printf("busiest hour: %02d:00\n", h)
		}

	case "reset-stats":
		if err := tracking.NewTracker(st).Reset(); err != nil {
			fatal(err)
		}

	case "chat":
		if *text == "" {
			fatal(fmt.Errorf("chat mode requires -text"))
		}
		assistant := chat.NewClient(chat.ClientOptions{
			Endpoint: cfg.Chat.Endpoint,
			APIKey:   cfg.Chat.APIKey,
			Model:    cfg.Chat.Model,
			Timeout:  time.Duration(cfg.Chat.TimeoutMS) * time.Millisecond,
		})
		var loc *route.Coordinate
		if *lat != 0 || *lng != 0 {
			loc = &route.Coordinate{Lat: *lat, Lng: *lng}
		}
		answer, err := assistant.Send(ctx, nil, *text, loc)
		if err != nil {
			fmt.Println(chat.FallbackMessage)
			os.Exit(1)
		}
		fmt.Println(answer.Text)
		for _, p := range answer.Places {
			fmt.Printf("  %s - %s\n", p.Title, p.URI)
		}

	default:
		fatal(fmt.Errorf("unknown mode %q", *mode))
	}
}

func pick(flagValue, current float64) float64 {
	if flagValue > 0 {
		return flagValue
	}
	return current
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
