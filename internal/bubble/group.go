package bubble

// HideAvatars returns, for each message in display order, whether its avatar
// should be hidden. A message hides its avatar if the message before it has
// the same author, so only the first message of a run shows one.
func HideAvatars(msgs []Message) []bool {
	hide := make([]bool, len(msgs))
	for i := 1; i < len(msgs); i++ {
		hide[i] = msgs[i-1].User.ID == msgs[i].User.ID
	}
	return hide
}
