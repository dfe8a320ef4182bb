package game

// ScoreTracker holds the session status and the score, the highest row
// the player has committed to.
type ScoreTracker struct {
	status Status
	score  int
}

// Status returns the session status.
func (s *ScoreTracker) Status() Status {
	return s.status
}

// Score returns the current score.
func (s *ScoreTracker) Score() int {
	return s.score
}

// UpdateScore raises the score to row if it is higher. The score is frozen
// once the game is over.
func (s *ScoreTracker) UpdateScore(row int) {
	if s.status == StatusOver {
		return
	}
	if row > s.score {
		s.score = row
	}
}

// EndGame marks the session over. It returns false if it already was.
func (s *ScoreTracker) EndGame() bool {
	if s.status == StatusOver {
		return false
	}
	s.status = StatusOver
	return true
}

// Reset starts a new running session with zero score.
func (s *ScoreTracker) Reset() {
	s.status = StatusRunning
	s.score = 0
}
