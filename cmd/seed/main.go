package main

import (
	"fmt"
	"log"
	"time"

	"cinetix/internal/cinemas"
	"cinetix/internal/movies"
	"cinetix/internal/screens"
	"cinetix/internal/shared/config"
	"cinetix/internal/shared/database"
	"cinetix/internal/showtimes"
	"cinetix/internal/theatres"
	"cinetix/internal/users"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting Cinetix database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}

	fmt.Println("Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seeding completed. Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"booking_seats",
		"bookings",
		"showtimes",
		"screens",
		"theatres",
		"cinemas",
		"movies",
		"users",
	}

	for _, table := range tables {
		if err := s.db.GetPostgreSQL().Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clean table %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	if err := s.seedUsers(); err != nil {
		return err
	}

	cinema, err := s.seedCinema()
	if err != nil {
		return err
	}

	theatre, err := s.seedTheatre(cinema)
	if err != nil {
		return err
	}

	screen, err := s.seedScreen(theatre)
	if err != nil {
		return err
	}

	movie, err := s.seedMovie()
	if err != nil {
		return err
	}

	return s.seedShowtimes(movie, theatre, screen)
}

func (s *Seeder) seedUsers() error {
	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	seedUsers := []users.User{
		{Name: "Admin User", Email: "admin@cinetix.dev", Password: string(password), Role: users.RoleAdmin},
		{Name: "Asha Rao", Email: "asha@example.com", Password: string(password), Role: users.RoleUser},
		{Name: "Miguel Torres", Email: "miguel@example.com", Password: string(password), Role: users.RoleUser},
	}

	for i := range seedUsers {
		if err := s.db.GetPostgreSQL().Create(&seedUsers[i]).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", seedUsers[i].Email, err)
		}
	}
	fmt.Printf("  seeded %d users\n", len(seedUsers))
	return nil
}

func (s *Seeder) seedCinema() (*cinemas.Cinema, error) {
	cinema := &cinemas.Cinema{
		Name:    "Galaxy Cineplex",
		City:    "Mumbai",
		Address: "12 Marine Drive",
	}
	if err := s.db.GetPostgreSQL().Create(cinema).Error; err != nil {
		return nil, fmt.Errorf("failed to seed cinema: %w", err)
	}
	fmt.Println("  seeded cinema:", cinema.Name)
	return cinema, nil
}

func (s *Seeder) seedTheatre(cinema *cinemas.Cinema) (*theatres.Theatre, error) {
	theatre := &theatres.Theatre{
		CinemaID: cinema.ID,
		Name:     "Audi 1",
		Location: "Ground Floor",
	}
	if err := s.db.GetPostgreSQL().Create(theatre).Error; err != nil {
		return nil, fmt.Errorf("failed to seed theatre: %w", err)
	}
	fmt.Println("  seeded theatre:", theatre.Name)
	return theatre, nil
}

func (s *Seeder) seedScreen(theatre *theatres.Theatre) (*screens.Screen, error) {
	layout := make([]string, 0, 48)
	for _, row := range []string{"A", "B", "C", "D", "E", "F"} {
		for seat := 1; seat <= 8; seat++ {
			layout = append(layout, fmt.Sprintf("%s%d", row, seat))
		}
	}

	screen := &screens.Screen{
		TheatreID:  theatre.ID,
		Name:       "Screen 1",
		SeatLayout: layout,
		TotalSeats: len(layout),
	}
	if err := s.db.GetPostgreSQL().Create(screen).Error; err != nil {
		return nil, fmt.Errorf("failed to seed screen: %w", err)
	}
	fmt.Printf("  seeded screen %s with %d seats\n", screen.Name, screen.TotalSeats)
	return screen, nil
}

func (s *Seeder) seedMovie() (*movies.Movie, error) {
	movie := &movies.Movie{
		Title:        "The Long Night",
		Description:  "A detective races the clock through one sleepless night.",
		Genres:       []string{"Thriller", "Drama"},
		Language:     "English",
		DurationMins: 128,
		Rating:       8.1,
		ReleaseDate:  time.Now().AddDate(0, -1, 0),
	}
	if err := s.db.GetPostgreSQL().Create(movie).Error; err != nil {
		return nil, fmt.Errorf("failed to seed movie: %w", err)
	}
	fmt.Println("  seeded movie:", movie.Title)
	return movie, nil
}

func (s *Seeder) seedShowtimes(movie *movies.Movie, theatre *theatres.Theatre, screen *screens.Screen) error {
	tomorrow := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	slots := []struct {
		start time.Duration
		price float64
	}{
		{14 * time.Hour, 250},
		{18 * time.Hour, 300},
		{21*time.Hour + 30*time.Minute, 350},
	}

	for _, slot := range slots {
		showtime := &showtimes.Showtime{
			MovieID:   movie.ID,
			TheatreID: theatre.ID,
			ScreenID:  screen.ID,
			ShowDate:  tomorrow,
			StartTime: tomorrow.Add(slot.start),
			EndTime:   tomorrow.Add(slot.start + time.Duration(movie.DurationMins)*time.Minute),
			Price:     slot.price,
		}
		if err := s.db.GetPostgreSQL().Create(showtime).Error; err != nil {
			return fmt.Errorf("failed to seed showtime: %w", err)
		}
	}
	fmt.Printf("  seeded %d showtimes for %s\n", len(slots), movie.Title)
	return nil
}
