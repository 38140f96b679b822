package records

import (
	"context"
	"fmt"
	"log"

	"github.com/medonline/consultation-scheduler/internal/models"
	"github.com/medonline/consultation-scheduler/internal/store"
)

// RecordsRepository persists scheduler entities through the path-keyed
// record store. Malformed records coming back from list reads are
// quarantined (skipped and logged) rather than propagated.
type RecordsRepository struct {
	store store.Store
}

func NewRecordsRepository(s store.Store) *RecordsRepository {
	return &RecordsRepository{store: s}
}

// --------------------------------------------------
// Paths
// --------------------------------------------------

func userPath(userID string) string {
	return "users/" + userID
}

func appointmentsPath(userID string) string {
	return userPath(userID) + "/appointments"
}

func appointmentPath(userID, appointmentID string) string {
	return appointmentsPath(userID) + "/" + appointmentID
}

func absencesPath(doctorID string) string {
	return userPath(doctorID) + "/absences"
}

func absencePath(doctorID, key string) string {
	return absencesPath(doctorID) + "/" + key
}

func availabilityListPath(doctorID string) string {
	return userPath(doctorID) + "/availability"
}

func availabilityPath(doctorID, key string) string {
	return availabilityListPath(doctorID) + "/" + key
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *RecordsRepository) ListAppointments(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {

	recs, err := r.store.List(ctx, appointmentsPath(userID))
	if err != nil {
		return nil, err
	}

	appointments := make([]models.Appointment, 0, len(recs))
	for _, rec := range recs {
		ap, err := models.ParseAppointment(rec.Data)
		if err != nil {
			log.Printf("skipping malformed record %s: %v", rec.Key, err)
			continue
		}
		appointments = append(appointments, ap)
	}
	return appointments, nil
}

// CreateAppointment writes the doctor's copy first, then the patient's.
// If the second write fails the first is rolled back, so a single failure
// never leaves one dangling copy.
func (r *RecordsRepository) CreateAppointment(
	ctx context.Context,
	ap models.Appointment,
) error {

	doctorPath := appointmentPath(ap.DoctorID, ap.AppointmentID)
	patientPath := appointmentPath(ap.PatientID, ap.AppointmentID)

	if err := r.store.Write(ctx, doctorPath, ap); err != nil {
		return err
	}

	if err := r.store.Write(ctx, patientPath, ap); err != nil {
		if rbErr := r.store.Delete(ctx, doctorPath); rbErr != nil {
			log.Printf("rollback of %s failed: %v", doctorPath, rbErr)
			return &store.PartialWriteError{
				Op:         "create appointment",
				DonePath:   doctorPath,
				FailedPath: patientPath,
				Err:        err,
			}
		}
		return err
	}
	return nil
}

// DeleteAppointment removes both copies. Both deletes are attempted even
// when the first fails; a one-sided failure is reported as a partial write.
func (r *RecordsRepository) DeleteAppointment(
	ctx context.Context,
	doctorID string,
	patientID string,
	appointmentID string,
) error {

	doctorPath := appointmentPath(doctorID, appointmentID)
	patientPath := appointmentPath(patientID, appointmentID)

	doctorErr := r.store.Delete(ctx, doctorPath)
	patientErr := r.store.Delete(ctx, patientPath)

	switch {
	case doctorErr == nil && patientErr == nil:
		return nil
	case doctorErr != nil && patientErr != nil:
		return doctorErr
	case doctorErr != nil:
		return &store.PartialWriteError{
			Op:         "delete appointment",
			DonePath:   patientPath,
			FailedPath: doctorPath,
			Err:        doctorErr,
		}
	default:
		return &store.PartialWriteError{
			Op:         "delete appointment",
			DonePath:   doctorPath,
			FailedPath: patientPath,
			Err:        patientErr,
		}
	}
}

func (r *RecordsRepository) MarkPaid(
	ctx context.Context,
	userID string,
	appointmentID string,
) error {
	return r.store.Update(
		ctx,
		appointmentPath(userID, appointmentID),
		map[string]any{"paid": true},
	)
}

// --------------------------------------------------
// Absences
// --------------------------------------------------

func (r *RecordsRepository) ListAbsences(
	ctx context.Context,
	doctorID string,
) ([]models.Absence, error) {

	recs, err := r.store.List(ctx, absencesPath(doctorID))
	if err != nil {
		return nil, err
	}

	absences := make([]models.Absence, 0, len(recs))
	for _, rec := range recs {
		ab, err := models.ParseAbsence(rec.Data)
		if err != nil {
			log.Printf("skipping malformed record %s: %v", rec.Key, err)
			continue
		}
		absences = append(absences, ab)
	}
	return absences, nil
}

func (r *RecordsRepository) SaveAbsence(
	ctx context.Context,
	doctorID string,
	ab models.Absence,
) error {
	return r.store.Write(ctx, absencePath(doctorID, ab.Key), ab)
}

func (r *RecordsRepository) DeleteAbsence(
	ctx context.Context,
	doctorID string,
	key string,
) error {
	return r.store.Delete(ctx, absencePath(doctorID, key))
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *RecordsRepository) ListAvailability(
	ctx context.Context,
	doctorID string,
) ([]models.Availability, error) {

	recs, err := r.store.List(ctx, availabilityListPath(doctorID))
	if err != nil {
		return nil, err
	}

	entries := make([]models.Availability, 0, len(recs))
	for _, rec := range recs {
		av, err := models.ParseAvailability(rec.Data)
		if err != nil {
			log.Printf("skipping malformed record %s: %v", rec.Key, err)
			continue
		}
		entries = append(entries, av)
	}
	return entries, nil
}

func (r *RecordsRepository) SaveAvailability(
	ctx context.Context,
	doctorID string,
	av models.Availability,
) error {
	return r.store.Write(ctx, availabilityPath(doctorID, av.Key), av)
}

func (r *RecordsRepository) DeleteAvailability(
	ctx context.Context,
	doctorID string,
	key string,
) error {
	return r.store.Delete(ctx, availabilityPath(doctorID, key))
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *RecordsRepository) GetProfile(
	ctx context.Context,
	userID string,
) (models.Profile, error) {

	rec, err := r.store.Read(ctx, userPath(userID))
	if err != nil {
		return models.Profile{}, err
	}
	return models.ParseProfile(rec.Data)
}

func (r *RecordsRepository) SaveProfile(
	ctx context.Context,
	p models.Profile,
) error {
	return r.store.Write(ctx, userPath(p.UserID), p)
}

func (r *RecordsRepository) FindProfileByEmail(
	ctx context.Context,
	email string,
) (models.Profile, error) {

	recs, err := r.store.List(ctx, "users")
	if err != nil {
		return models.Profile{}, err
	}

	for _, rec := range recs {
		p, err := models.ParseProfile(rec.Data)
		if err != nil {
			log.Printf("skipping malformed record %s: %v", rec.Key, err)
			continue
		}
		if p.Email == email {
			return p, nil
		}
	}
	return models.Profile{}, fmt.Errorf("profile %s: %w", email, store.ErrNotFound)
}

func (r *RecordsRepository) ListDoctors(
	ctx context.Context,
) ([]models.Profile, error) {

	recs, err := r.store.List(ctx, "users")
	if err != nil {
		return nil, err
	}

	doctors := make([]models.Profile, 0, len(recs))
	for _, rec := range recs {
		p, err := models.ParseProfile(rec.Data)
		if err != nil {
			log.Printf("skipping malformed record %s: %v", rec.Key, err)
			continue
		}
		if p.Type == models.RoleDoctor {
			doctors = append(doctors, p)
		}
	}
	return doctors, nil
}

func (r *RecordsRepository) DeleteUser(
	ctx context.Context,
	userID string,
) error {
	return r.store.DeleteTree(ctx, userPath(userID))
}

// --------------------------------------------------
// Keys
// --------------------------------------------------

func (r *RecordsRepository) NewID() string {
	return r.store.NewID()
}
