package main

import "moodmovie-be/internal/entity"

func rating(v float64) *float64 { return &v }

func seedMovie(title string, year, minutes int, mood, energy, director string, genres []string, imdb float64, description string) *entity.Movie {
	return &entity.Movie{
		Title:              title,
		Year:               year,
		Description:        description,
		DurationMinutes:    minutes,
		PrimaryMood:        mood,
		EnergyLevel:        energy,
		Genres:             genres,
		Director:           director,
		ImdbRating:         rating(imdb),
		Platform:           "Unknown",
		StreamingProviders: []string{"Check local listings"},
	}
}

// starterCatalog covers every mood so a fresh install answers most selections
// without expansion.
func starterCatalog() []*entity.Movie {
	return []*entity.Movie{
		seedMovie("The Grand Budapest Hotel", 2014, 99, "happy", "medium", "Wes Anderson", []string{"Comedy", "Adventure"}, 8.1, "A legendary concierge and his lobby boy are framed for murder."),
		seedMovie("Paddington 2", 2017, 103, "happy", "medium", "Paul King", []string{"Family", "Comedy"}, 7.8, "A bear takes odd jobs to buy a pop-up book and ends up in prison."),
		seedMovie("Singin' in the Rain", 1952, 103, "happy", "high", "Stanley Donen", []string{"Musical", "Comedy"}, 8.3, "Hollywood stumbles into the talkie era."),

		seedMovie("Manchester by the Sea", 2016, 137, "sad", "low", "Kenneth Lonergan", []string{"Drama"}, 7.8, "A janitor returns home to care for his nephew."),
		seedMovie("Grave of the Fireflies", 1988, 89, "sad", "medium", "Isao Takahata", []string{"Animation", "Drama", "War"}, 8.5, "Two siblings struggle to survive in wartime Japan."),
		seedMovie("Blue Valentine", 2010, 112, "sad", "low", "Derek Cianfrance", []string{"Drama", "Romance"}, 7.3, "A marriage seen at its beginning and its end."),

		seedMovie("Uncut Gems", 2019, 135, "anxious", "high", "Josh Safdie", []string{"Crime", "Thriller"}, 7.4, "A jeweler bets everything on one last score."),
		seedMovie("Whiplash", 2014, 106, "anxious", "high", "Damien Chazelle", []string{"Drama", "Music"}, 8.5, "A drummer is pushed past breaking point by his teacher."),
		seedMovie("Rear Window", 1954, 112, "anxious", "low", "Alfred Hitchcock", []string{"Mystery", "Thriller"}, 8.5, "A housebound photographer suspects a neighbor of murder."),

		seedMovie("Before Sunrise", 1995, 101, "romantic", "low", "Richard Linklater", []string{"Drama", "Romance"}, 8.1, "Two strangers spend one night walking through Vienna."),
		seedMovie("Amélie", 2001, 122, "romantic", "medium", "Jean-Pierre Jeunet", []string{"Comedy", "Romance"}, 8.3, "A shy waitress quietly improves the lives of those around her."),
		seedMovie("When Harry Met Sally...", 1989, 95, "romantic", "medium", "Rob Reiner", []string{"Comedy", "Romance"}, 7.7, "Can men and women ever just be friends?"),

		seedMovie("My Neighbor Totoro", 1988, 86, "tired", "low", "Hayao Miyazaki", []string{"Animation", "Family", "Fantasy"}, 8.1, "Two sisters meet forest spirits in rural Japan."),
		seedMovie("Paterson", 2016, 118, "tired", "low", "Jim Jarmusch", []string{"Drama", "Comedy"}, 7.3, "A week in the life of a bus driver who writes poetry."),
		seedMovie("Chef", 2014, 114, "tired", "medium", "Jon Favreau", []string{"Comedy", "Drama"}, 7.3, "A chef quits his job and starts a food truck."),

		seedMovie("Rocky", 1976, 120, "motivated", "high", "John G. Avildsen", []string{"Drama", "Sport"}, 8.1, "A small-time boxer gets a shot at the heavyweight title."),
		seedMovie("The Pursuit of Happyness", 2006, 117, "motivated", "medium", "Gabriele Muccino", []string{"Biography", "Drama"}, 8.0, "A struggling father fights for a stockbroker internship."),
		seedMovie("Hidden Figures", 2016, 127, "motivated", "medium", "Theodore Melfi", []string{"Biography", "Drama", "History"}, 7.8, "Three mathematicians power the early space race."),

		seedMovie("Knives Out", 2019, 130, "bored", "medium", "Rian Johnson", []string{"Comedy", "Crime", "Mystery"}, 7.9, "A detective untangles a family's lies after a novelist's death."),
		seedMovie("Edge of Tomorrow", 2014, 113, "bored", "high", "Doug Liman", []string{"Action", "Sci-Fi"}, 7.9, "A soldier relives the same battle over and over."),
		seedMovie("Everything Everywhere All at Once", 2022, 139, "bored", "high", "Daniel Kwan", []string{"Action", "Comedy", "Sci-Fi"}, 7.8, "A laundromat owner fights across the multiverse."),

		seedMovie("Lost in Translation", 2003, 102, "cozy", "low", "Sofia Coppola", []string{"Comedy", "Drama"}, 7.7, "Two insomniacs meet in a Tokyo hotel."),
		seedMovie("Kiki's Delivery Service", 1989, 103, "cozy", "low", "Hayao Miyazaki", []string{"Animation", "Family", "Fantasy"}, 7.8, "A young witch starts a flying delivery business."),
		seedMovie("Little Women", 2019, 135, "cozy", "medium", "Greta Gerwig", []string{"Drama", "Romance"}, 7.8, "The March sisters come of age after the Civil War."),

		seedMovie("Mad Max: Fury Road", 2015, 120, "intense", "high", "George Miller", []string{"Action", "Adventure", "Sci-Fi"}, 8.1, "A desert chase across a post-apocalyptic wasteland."),
		seedMovie("There Will Be Blood", 2007, 158, "intense", "medium", "Paul Thomas Anderson", []string{"Drama"}, 8.2, "An oil man's ambition consumes everything around him."),
		seedMovie("Heat", 1995, 170, "intense", "high", "Michael Mann", []string{"Action", "Crime", "Drama"}, 8.3, "A detective hunts a professional thief across Los Angeles."),

		seedMovie("Alien", 1979, 117, "thrilling", "medium", "Ridley Scott", []string{"Horror", "Sci-Fi"}, 8.5, "A salvage crew picks up something deadly."),
		seedMovie("Jaws", 1975, 124, "thrilling", "high", "Steven Spielberg", []string{"Adventure", "Thriller"}, 8.1, "A police chief hunts a great white shark."),
		seedMovie("Get Out", 2017, 104, "thrilling", "medium", "Jordan Peele", []string{"Horror", "Mystery", "Thriller"}, 7.8, "A weekend with the girlfriend's parents turns sinister."),

		seedMovie("Airplane!", 1980, 88, "silly", "high", "Jim Abrahams", []string{"Comedy"}, 7.7, "A former pilot must land a plane after the crew falls ill."),
		seedMovie("Hot Fuzz", 2007, 121, "silly", "high", "Edgar Wright", []string{"Action", "Comedy"}, 7.8, "A top London cop is reassigned to a suspiciously quiet village."),
		seedMovie("What We Do in the Shadows", 2014, 86, "silly", "medium", "Jemaine Clement", []string{"Comedy", "Horror"}, 7.7, "Vampire flatmates bicker through modern life in Wellington."),
	}
}
