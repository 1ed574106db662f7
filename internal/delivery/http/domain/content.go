package domain

var (
	CONTENT_ADD_BOOK_SUCCESS    = "Berhasil menambahkan buku"
	CONTENT_ADD_BOOK_FAILED     = "Gagal menambahkan buku"
	CONTENT_ADD_VIDEO_SUCCESS   = "Berhasil menambahkan video"
	CONTENT_ADD_VIDEO_FAILED    = "Gagal menambahkan video"
	CONTENT_LIST_BOOKS_SUCCESS  = "Berhasil mendapatkan daftar buku"
	CONTENT_LIST_BOOKS_FAILED   = "Gagal mendapatkan daftar buku"
	CONTENT_LIST_VIDEOS_SUCCESS = "Berhasil mendapatkan daftar video"
	CONTENT_LIST_VIDEOS_FAILED  = "Gagal mendapatkan daftar video"

	FEED_COMPOSE_SUCCESS = "Berhasil menyusun feed"
	FEED_COMPOSE_FAILED  = "Gagal menyusun feed"
	FEED_CURRENT_SUCCESS = "Berhasil mendapatkan item feed"
	FEED_CURRENT_FAILED  = "Gagal mendapatkan item feed"
	FEED_ANSWER_SUCCESS  = "Berhasil submit jawaban"
	FEED_ANSWER_FAILED   = "Gagal submit jawaban"
	FEED_ADVANCE_SUCCESS = "Berhasil melewati item"
	FEED_ADVANCE_FAILED  = "Gagal melewati item"
	FEED_STATS_SUCCESS   = "Berhasil mendapatkan statistik sesi"
	FEED_STATS_FAILED    = "Gagal mendapatkan statistik sesi"
)
