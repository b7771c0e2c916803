package roster

import (
	"github.com/charmbracelet/log"
)

// DefaultRoster returns the league's default 15-player roster with 0-0
// records. Used to populate an empty collection on first start.
func DefaultRoster() []Player {
	return []Player{
		{Name: "Adrian Thomas", Position: PositionForward, HeightWeight: "6'3, 195lbs", College: "University of Miami", Birthplace: "Orlando, FL", Status: StatusActive, Experience: "6th Season", Awards: "MVP 2021"},
		{Name: "Amani Jean-Louis", Position: PositionGuard, HeightWeight: "6'0, 185lbs", College: "University of Florida", Birthplace: "Miami, FL", Status: StatusActive, Experience: "5th Season", Awards: "All-Star 2023"},
		{Name: "Blake Schultz", Position: PositionForward, HeightWeight: "6'3, 195lbs", College: "Eckerd College", Birthplace: "Clearwater, FL", Status: StatusActive, Experience: "2nd Season"},
		{Name: "Bobby Floyd", Position: PositionGuard, HeightWeight: "5'10, 180lbs", College: "North Carolina State", Birthplace: "St. Petersburg, FL", Status: StatusActive, Experience: "4th Season", Awards: "Defensive Player of the Year 2022"},
		{Name: "Brandon Wright", Position: PositionForward, HeightWeight: "6'4, 200lbs", College: "Lynn University", Birthplace: "Boca Raton, FL", Status: StatusActive, Experience: "4th Season", Awards: "All-Defensive Team 2021"},
		{Name: "Brian Gomez", Position: PositionGuard, HeightWeight: "6'1, 185lbs", College: "Nova Southeastern University", Birthplace: "Hollywood, FL", Status: StatusActive, Experience: "6th Season", Awards: "All-Star 2022"},
		{Name: "Dane Dill", Position: PositionForward, HeightWeight: "6'4, 205lbs", College: "Stetson University", Birthplace: "Daytona Beach, FL", Status: StatusActive, Experience: "4th Season", Awards: "Defensive Player of the Year 2023"},
		{Name: "Dane Espegard", Position: PositionGuard, HeightWeight: "6'2, 190lbs", College: "University of Tampa", Birthplace: "Sarasota, FL", Status: StatusActive, Experience: "6th Season", Awards: "All-Defensive Team 2023"},
		{Name: "Derek Kissos", Position: PositionGuard, HeightWeight: "6'1, 180lbs", College: "Florida Gulf Coast University", Birthplace: "Naples, FL", Status: StatusActive, Experience: "2nd Season"},
		{Name: "Joey Grasso", Position: PositionGuard, HeightWeight: "6'2, 190lbs", College: "University of Central Florida", Birthplace: "Jacksonville, FL", Status: StatusActive, Experience: "4th Season", Awards: "Sixth Man of the Year 2023"},
		{Name: "Jordan Bowditch", Position: PositionForward, HeightWeight: "6'3, 195lbs", College: "University of North Florida", Birthplace: "Gainesville, FL", Status: StatusActive, Experience: "5th Season", Awards: "All-Star 2022"},
		{Name: "KC Crowder", Position: PositionGuard, HeightWeight: "6'0, 175lbs", College: "Rollins College", Birthplace: "Winter Park, FL", Status: StatusActive, Experience: "5th Season", Awards: "All-Star 2021"},
		{Name: "Oscar Moncada", Position: PositionGuard, HeightWeight: "6'0, 180lbs", College: "Florida International University", Birthplace: "Tampa, FL", Status: StatusActive, Experience: "3rd Season", Awards: "Rookie of the Year 2022"},
		{Name: "Scott Ely", Position: PositionForward, HeightWeight: "6'4, 200lbs", College: "University of South Florida", Birthplace: "Fort Lauderdale, FL", Status: StatusActive, Experience: "7th Season", Awards: "All-Defensive Team 2022"},
		{Name: "Shaun Morton", Position: PositionGuard, HeightWeight: "6'0, 185lbs", College: "Florida Atlantic University", Birthplace: "West Palm Beach, FL", Status: StatusActive, Experience: "3rd Season", Awards: "Most Improved Player 2023"},
	}
}

// EnsureRoster inserts every entry of roster whose name is not already in
// the collection. Existing records are never overwritten, so the call is
// idempotent and safe to run on every app start. Returns the number of
// players added.
//
// Name-matching here is a seeding convenience only; the store itself does
// not treat names as unique.
func EnsureRoster(store PlayerStore, roster []Player) (int, error) {
	existing, err := store.List()
	if err != nil {
		return 0, err
	}

	present := make(map[string]bool, len(existing))
	for _, p := range existing {
		present[p.Name] = true
	}

	added := 0
	for _, p := range roster {
		if present[p.Name] {
			continue
		}
		if _, err := store.Create(p); err != nil {
			return added, err
		}
		added++
	}

	if added > 0 {
		log.Info("Seeded missing roster entries", "added", added, "existing", len(existing))
	}
	return added, nil
}
