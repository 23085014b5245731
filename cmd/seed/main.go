// Command main runs the database seeder for MediConnect.
package main

import (
	"flag"
	"log"

	"mediconnect/internal/config"
	"mediconnect/internal/database"
	"mediconnect/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()

	numPatients := flag.Int("patients", defaults.NumPatients, "Number of patient accounts to create")
	numDoctors := flag.Int("doctors", defaults.NumDoctors, "Number of doctor accounts to create")
	numCommunities := flag.Int("communities", defaults.NumCommunities, "Number of communities to create")
	postsPerGroup := flag.Int("posts", defaults.PostsPerGroup, "Number of posts per community")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d patients, %d doctors, %d communities, %d posts each, clean=%v",
		*numPatients, *numDoctors, *numCommunities, *postsPerGroup, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumPatients:    *numPatients,
		NumDoctors:     *numDoctors,
		NumCommunities: *numCommunities,
		PostsPerGroup:  *postsPerGroup,
		ShouldClean:    *shouldClean,
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Demo accounts use the password:", seed.DemoPassword)
}
