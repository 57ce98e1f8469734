package usecase

// TaskConfig type is used to describe config for task.
type TaskConfig struct {
	Inputs []string
	// MaxLength bounds length of every input in runes, zero disables the bound.
	MaxLength    int
	WorkersCount int
}

// Progress type is used to represent progress of ranking.
type Progress struct {
	Done  uint64
	Total uint64
}
