package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/abovebytes/coursehub/config"
	"github.com/abovebytes/coursehub/internal/generator"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	gen := generator.New(cfg.CourseURLHost)

	courses := []struct {
		name, description, provider, language, level string
	}{
		{"Intro to Go", "Learn the Go programming language from scratch", "SELF_HOSTED", "en", "BEGINNER"},
		{"Advanced Postgres", "Indexes, constraints and query planning", "PLURALSIGHT", "en", "ADVANCED"},
		{"Kubernetes Basics", "Deploy and operate containerized workloads", "UDEMY", "en", "INTERMEDIATE"},
	}
	courseIDs := make(map[string]int64, len(courses))
	for _, c := range courses {
		var id int64
		err := db.QueryRow(`
			INSERT INTO course (course_name, course_url, description, provider, language, level, duration_minutes, rating)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (lower(course_name), provider, level) DO UPDATE SET updated_at = now()
			RETURNING id
		`, c.name, gen.URL(c.provider), c.description, c.provider, c.language, c.level, gen.DurationMinutes(), gen.Rating()).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed course %q: %v", c.name, err)
		}
		courseIDs[c.name] = id
		fmt.Printf("seeded course: id=%d name=%s\n", id, c.name)
	}

	users := []struct {
		fullName, email, role string
	}{
		{"Ada Student", "ada.student@example.com", "STUDENT"},
		{"Grace Instructor", "grace.instructor@example.com", "INSTRUCTOR"},
		{"Alan Admin", "alan.admin@example.com", "ADMIN"},
	}
	userIDs := make(map[string]int64, len(users))
	for _, u := range users {
		var id int64
		err := db.QueryRow(`
			INSERT INTO app_user (full_name, email, role)
			VALUES ($1, $2, $3)
			ON CONFLICT (lower(email)) DO UPDATE SET full_name = EXCLUDED.full_name
			RETURNING id
		`, u.fullName, u.email, u.role).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %q: %v", u.email, err)
		}
		userIDs[u.email] = id
		fmt.Printf("seeded user: id=%d email=%s role=%s\n", id, u.email, u.role)
	}

	if _, err := db.Exec(`
		INSERT INTO enrollment (student_id, teacher_id, course_id)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (
			SELECT 1 FROM enrollment WHERE student_id = $1 AND teacher_id = $2 AND course_id = $3
		)
	`, userIDs["ada.student@example.com"], userIDs["grace.instructor@example.com"], courseIDs["Intro to Go"]); err != nil {
		log.Fatalf("failed to seed enrollment: %v", err)
	}
	fmt.Println("seeded enrollment: Ada Student -> Intro to Go with Grace Instructor")
}
