package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

var StatusValues = []string{string(StatusPresent), string(StatusAbsent)}

// Record is one absence. Presence is never stored.
type Record struct {
	Date       time.Time
	PairNumber int
	StudentID  int
	Reason     string
	Respectful bool
	Hours      int
	Comment    string
}

// Key identifies a record.
type Key struct {
	Date       time.Time
	PairNumber int
	StudentID  int
}

func (r Record) Key() Key {
	return Key{Date: r.Date, PairNumber: r.PairNumber, StudentID: r.StudentID}
}
