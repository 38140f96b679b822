package schedule

import (
	"context"

	"github.com/medonline/consultation-scheduler/internal/models"
)

// Repository is the persistence surface the scheduling workflows depend on.
// Appointments exist in two copies, one per participant; implementations own
// keeping the copies consistent on create and delete.
type Repository interface {
	// -------- Appointments --------
	ListAppointments(
		ctx context.Context,
		userID string,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		doctorID string,
		patientID string,
		appointmentID string,
	) error

	MarkPaid(
		ctx context.Context,
		userID string,
		appointmentID string,
	) error

	// -------- Absences --------
	ListAbsences(
		ctx context.Context,
		doctorID string,
	) ([]models.Absence, error)

	SaveAbsence(
		ctx context.Context,
		doctorID string,
		ab models.Absence,
	) error

	DeleteAbsence(
		ctx context.Context,
		doctorID string,
		key string,
	) error

	// -------- Availability --------
	ListAvailability(
		ctx context.Context,
		doctorID string,
	) ([]models.Availability, error)

	SaveAvailability(
		ctx context.Context,
		doctorID string,
		av models.Availability,
	) error

	DeleteAvailability(
		ctx context.Context,
		doctorID string,
		key string,
	) error

	// -------- Profiles --------
	GetProfile(
		ctx context.Context,
		userID string,
	) (models.Profile, error)

	SaveProfile(
		ctx context.Context,
		p models.Profile,
	) error

	FindProfileByEmail(
		ctx context.Context,
		email string,
	) (models.Profile, error)

	ListDoctors(
		ctx context.Context,
	) ([]models.Profile, error)

	DeleteUser(
		ctx context.Context,
		userID string,
	) error

	// -------- Keys --------
	NewID() string
}
