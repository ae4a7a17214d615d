package domain

const (
	Dog    PetType = "dog"
	Cat    PetType = "cat"
	Bird   PetType = "bird"
	Fish   PetType = "fish"
	Rabbit PetType = "rabbit"
)

// DefaultNames is the built-in names table.
func DefaultNames() []Table {
	return []Table{
		{PetType: Dog, Entries: []string{
			"Buddy", "Max", "Charlie", "Cooper", "Rocky", "Bear", "Duke", "Zeus",
			"Tucker", "Jack", "Oliver", "Leo", "Milo", "Teddy", "Finn", "Oscar",
			"Luna", "Bella", "Daisy", "Lucy", "Molly", "Sadie", "Sophie", "Chloe",
			"Lola", "Zoe", "Penny", "Nala", "Stella", "Ruby", "Rosie", "Lily",
		}},
		{PetType: Cat, Entries: []string{
			"Whiskers", "Shadow", "Mittens", "Tiger", "Smokey", "Oreo", "Felix",
			"Simba", "Garfield", "Chester", "Jasper", "Oscar", "Leo", "Max",
			"Luna", "Chloe", "Bella", "Lucy", "Lily", "Sophie", "Princess",
			"Cleo", "Nala", "Zoe", "Gracie", "Penny", "Molly", "Daisy",
		}},
		{PetType: Bird, Entries: []string{
			"Tweety", "Sunny", "Blue", "Charlie", "Kiwi", "Mango", "Rio",
			"Skye", "Pepper", "Sunny", "Rainbow", "Echo", "Phoenix", "Storm",
			"Angel", "Pearl", "Ruby", "Jewel", "Crystal", "Jade", "Coral",
		}},
		{PetType: Fish, Entries: []string{
			"Nemo", "Dory", "Bubbles", "Fin", "Splash", "Goldie", "Neptune",
			"Coral", "Pearl", "Aqua", "Marina", "Blue", "Sunny", "Flash",
			"Shimmer", "Glimmer", "Sparkle", "Wave", "Current", "Tide",
		}},
		{PetType: Rabbit, Entries: []string{
			"Bunny", "Thumper", "Cottontail", "Snowball", "Pepper", "Cocoa",
			"Hazel", "Clover", "Sage", "Basil", "Honey", "Sugar", "Cinnamon",
			"Nutmeg", "Ginger", "Caramel", "Mocha", "Vanilla", "Butterscotch",
		}},
	}
}

// DefaultFacts is the built-in facts table.
func DefaultFacts() []Table {
	return []Table{
		{PetType: Dog, Entries: []string{
			"Dogs have three eyelids: upper, lower, and a third lid called the nictitating membrane!",
			"A dog's sense of smell is 10,000 to 100,000 times stronger than humans!",
			"Dogs can learn over 150 words and can count up to four or five!",
			"The basenji dog is known as the 'barkless dog' because it doesn't bark like other dogs!",
			"Dogs sweat through their paw pads and cool down by panting!",
		}},
		{PetType: Cat, Entries: []string{
			"Cats have 32 muscles in each ear, allowing them to rotate their ears 180 degrees!",
			"A group of cats is called a 'clowder' and a group of kittens is called a 'kindle'!",
			"Cats spend 70% of their lives sleeping - that's 13 to 16 hours a day!",
			"A cat's purr vibrates at a frequency that promotes bone healing!",
			"Cats can make over 100 different sounds, while dogs can only make about 10!",
		}},
		{PetType: Bird, Entries: []string{
			"Birds are the only living descendants of dinosaurs!",
			"The Arctic tern has the longest migration of any bird, flying from Arctic to Antarctic annually!",
			"Hummingbirds can fly backwards and are the only birds that can hover in place!",
			"Parrots can live over 100 years, with some macaws living up to 120 years!",
			"Birds don't have teeth - they use their gizzards to grind up food!",
		}},
		{PetType: Fish, Entries: []string{
			"Fish have been on Earth for over 500 million years!",
			"Some fish, like the lungfish, can survive out of water for months!",
			"Goldfish can see in four colors: red, green, blue, and ultraviolet!",
			"The oldest known goldfish lived to 43 years old!",
			"Fish don't have eyelids, so they sleep with their eyes open!",
		}},
		{PetType: Rabbit, Entries: []string{
			"Rabbits can see behind them without turning their heads due to their eye placement!",
			"A rabbit's teeth never stop growing throughout their entire life!",
			"Rabbits can jump nearly 3 feet high and 10 feet long!",
			"Baby rabbits are called 'kits' and are born blind and hairless!",
			"Rabbits can live 8-12 years with proper care and can be litter trained like cats!",
		}},
	}
}

// Default builds the catalog from the built-in tables.
func Default() *Catalog {
	catalog, err := NewCatalog(DefaultNames(), DefaultFacts())
	if err != nil {
		panic(err)
	}
	return catalog
}
