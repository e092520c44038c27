package game

// PreconditionError is returned when a round cannot start
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// ErrNoDataset is returned by Start when the dataset is empty or was never loaded
var ErrNoDataset = &PreconditionError{Reason: "no dataset loaded"}
