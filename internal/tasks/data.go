package tasks

import (
	"time"

	"github.com/desertthunder/fyyur/internal/models"
)

type demoQuestion struct {
	category   string
	question   string
	answer     string
	difficulty int
}

type demoShow struct {
	venue  int
	artist int
	start  time.Time
}

func demoCategories() []*models.Category {
	return []*models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "Geography"},
		{Type: "History"},
		{Type: "Entertainment"},
		{Type: "Sports"},
	}
}

func demoQuestions() []demoQuestion {
	return []demoQuestion{
		{"Science", "What is the heaviest organ in the human body?", "The Liver", 4},
		{"Science", "Who discovered penicillin?", "Alexander Fleming", 3},
		{"Science", "Hematology is a branch of medicine involving the study of what?", "Blood", 4},
		{"Art", "Which Dutch graphic artist, initials M C, was a creator of optical illusions?", "Escher", 1},
		{"Art", "La Giaconda is better known as what?", "Mona Lisa", 3},
		{"Art", "How many paintings did Van Gogh sell in his lifetime?", "One", 4},
		{"Geography", "What is the largest lake in Africa?", "Lake Victoria", 2},
		{"Geography", "In which royal palace would you find the Hall of Mirrors?", "The Palace of Versailles", 3},
		{"Geography", "The Taj Mahal is located in which Indian city?", "Agra", 2},
		{"History", "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", 2},
		{"History", "Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", 4},
		{"History", "Who invented Peanut Butter?", "George Washington Carver", 2},
		{"Entertainment", "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", 4},
		{"Entertainment", "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", "Tom Cruise", 4},
		{"Sports", "Which is the only team to play in every soccer World Cup tournament?", "Brazil", 3},
		{"Sports", "Which country won the first ever soccer World Cup in 1930?", "Uruguay", 4},
		{"Sports", "How many players are on the field for one side in a game of rugby union?", "Fifteen", 2},
	}
}

func demoVenues() []*models.Venue {
	return []*models.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			WebsiteLink:        "https://www.themusicalhop.com",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			WebsiteLink:  "https://www.theduelingpianos.com",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		},
	}
}

func demoArtists() []*models.Artist {
	return []*models.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			Website:            "https://www.gunsnpetalsband.com",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			Genres:             []string{"Rock n Roll"},
		},
		{
			Name:         "Matt Quevedo",
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			Genres:       []string{"Jazz"},
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
			Genres:    []string{"Jazz", "Classical"},
		},
	}
}

// demoShows places two shows in the past and three after now. Indexes refer to
// demoVenues and demoArtists.
func demoShows(now time.Time) []demoShow {
	base := now.UTC().Truncate(time.Hour)
	return []demoShow{
		{venue: 0, artist: 0, start: time.Date(2019, time.May, 21, 21, 30, 0, 0, time.UTC)},
		{venue: 2, artist: 1, start: time.Date(2019, time.June, 15, 23, 0, 0, 0, time.UTC)},
		{venue: 2, artist: 2, start: base.AddDate(0, 0, 7).Add(20 * time.Hour)},
		{venue: 2, artist: 2, start: base.AddDate(0, 0, 14).Add(20 * time.Hour)},
		{venue: 0, artist: 2, start: base.AddDate(0, 1, 0).Add(20 * time.Hour)},
	}
}
