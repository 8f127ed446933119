package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/medidesk/clinic-backend/internal/logger"
)

func newTestPatientRepo(t *testing.T) (*patientRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &patientRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestFindPatientByPhone_Success(t *testing.T) {
	repo, mock, db := newTestPatientRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"patient_id", "patient_name", "phone", "password"}).
		AddRow(7, "Alice Smith", "5551234567", "$2a$10$hashhashhashhashhashha")

	mock.ExpectQuery("SELECT patient_id").
		WithArgs("5551234567").
		WillReturnRows(rows)

	found, err := repo.FindPatientByPhone(ctx, "5551234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.PatientID != 7 {
		t.Errorf("expected PatientID=7, got %d", found.PatientID)
	}
	if found.Name != "Alice Smith" {
		t.Errorf("expected name Alice Smith, got %s", found.Name)
	}
	if found.PasswordHash == "" {
		t.Error("expected password hash to be scanned")
	}
}

func TestFindPatientByPhone_NotFound(t *testing.T) {
	repo, mock, db := newTestPatientRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT patient_id").
		WithArgs("5550000000").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindPatientByPhone(ctx, "5550000000")
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestFindPatientByPhone_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestPatientRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT patient_id").
		WithArgs("5551234567").
		WillReturnError(errors.New("db network error"))

	_, err := repo.FindPatientByPhone(ctx, "5551234567")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindPatientByPhone_ScanError(t *testing.T) {
	repo, mock, db := newTestPatientRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"patient_id"}).AddRow(7) // wrong shape

	mock.ExpectQuery("SELECT patient_id").
		WithArgs("5551234567").
		WillReturnRows(rows)

	_, err := repo.FindPatientByPhone(ctx, "5551234567")
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}
