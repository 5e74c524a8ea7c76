package service

import "errors"

// Error taxonomy check-in/out. Tiap alasan penolakan dibedakan —
// jangan pernah digabung jadi satu pesan generik.
var (
	// Configuration problem, butuh tindakan admin
	ErrNoSiteAssigned      = errors.New("no workplace assigned")
	ErrEmployeeNotApproved = errors.New("employee not approved or missing employee ID")

	// VerificationDenied — recoverable, user bisa coba lagi
	ErrBiometricFailed = errors.New("fingerprint verification failed")
	ErrOutsideGeofence = errors.New("not within office range")

	// State machine refusals
	ErrNotCheckedIn      = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("day already completed")

	// Logic error: check-out sebelum check-in (durasi negatif dilarang)
	ErrInvalidStateTransition = errors.New("invalid attendance state transition")
)
