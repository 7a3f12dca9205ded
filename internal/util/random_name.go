package util

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Lucky", "Bluffing", "Patient", "Reckless", "Quiet", "Loose", "Tight", "Daring", "Sneaky", "Bold",
	"Crafty", "Steady", "Wild", "Cool", "Fearless", "Cunning", "Stubborn", "Slick", "Grinning", "Restless",
	"Humble", "Brash", "Shrewd", "Calm", "Hasty",
}

var animals = []string{
	"Shark", "Fox", "Owl", "Raven", "Badger", "Coyote", "Lynx", "Falcon", "Viper", "Weasel",
	"Walrus", "Heron", "Moose", "Raccoon", "Ferret", "Jackal", "Cobra", "Marmot", "Stoat", "Osprey",
	"Puma", "Mongoose", "Donkey", "Tortoise", "Magpie",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	adjectivesIndex := rand.Intn(len(adjectives))
	animalsIndex := rand.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
