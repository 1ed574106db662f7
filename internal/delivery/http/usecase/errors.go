package usecase

import "errors"

var (
	// ErrEmptyFeed - user belum punya item sama sekali; bukan failure,
	// caller harus menampilkan empty state.
	ErrEmptyFeed = errors.New("feed is empty")

	// ErrNoSession - submit/advance dipanggil sebelum feed disusun.
	ErrNoSession = errors.New("no active session, compose the feed first")

	// ErrOutOfRange - invariant posisi queue dilanggar. Programmer error,
	// tidak boleh tercapai lewat pemakaian engine yang benar.
	ErrOutOfRange = errors.New("queue position out of range")
)
