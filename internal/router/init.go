package router

import (
	"github.com/abovebytes/coursehub/internal/application"
	"github.com/abovebytes/coursehub/internal/container"
	pginfra "github.com/abovebytes/coursehub/internal/infrastructure/postgres"
	handlers "github.com/abovebytes/coursehub/internal/interface/http"
	"github.com/abovebytes/coursehub/internal/router/modules"
)

// InitModules builds repositories, services and handlers from the
// container singletons and registers every feature module.
// Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	courseRepo := pginfra.NewCourseRepository(pool)
	userRepo := pginfra.NewUserRepository(pool)
	enrollmentRepo := pginfra.NewEnrollmentRepository(pool)

	// Keep the interface nil when no publisher was configured so
	// services skip publishing instead of hitting a typed-nil value.
	var pub application.EventPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	courseSvc := application.NewCourseService(
		courseRepo,
		container.GetCourseGen(),
		logger,
		pub,
		container.GetES(),
		cfg.ESCoursesIndex,
	)
	userSvc := application.NewUserService(userRepo, logger, pub)
	enrollmentSvc := application.NewEnrollmentService(enrollmentRepo, userRepo, courseRepo, logger, pub)

	r.Add(modules.NewCourseModule(handlers.NewCourseHandler(courseSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewEnrollmentModule(handlers.NewEnrollmentHandler(enrollmentSvc, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
