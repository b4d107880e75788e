package broadcast

// ErrHubClosed is returned when Subscribe or Publish is attempted on a
// Hub that has already been closed.
type ErrHubClosed struct{}

func (e ErrHubClosed) Error() string {
	return "broadcast: hub is closed"
}
