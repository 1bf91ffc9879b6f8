package employee

import "time"

const (
	RoleDokter  = "dokter"
	RolePegawai = "pegawai"
)

type Employee struct {
	ID        string
	Name      string
	Role      string
	AreaID    *string
	DailyRate int64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	AreaName *string
}
