package domain

// FeedbackIndex holds lookup indices from feedback to the block or task it
// references. Insertion order within each list follows input order.
type FeedbackIndex struct {
	ByBlock map[string][]CompletionFeedback
	ByTask  map[string][]CompletionFeedback
}

// BuildFeedbackIndex builds both indices in a single pass. Feedback with an
// empty reference is simply absent from that index; an item referencing both
// a block and a task appears in both.
func BuildFeedbackIndex(feedback []CompletionFeedback) FeedbackIndex {
	idx := FeedbackIndex{
		ByBlock: make(map[string][]CompletionFeedback),
		ByTask:  make(map[string][]CompletionFeedback),
	}
	for _, fb := range feedback {
		if fb.BlockID != "" {
			idx.ByBlock[fb.BlockID] = append(idx.ByBlock[fb.BlockID], fb)
		}
		if fb.TaskID != "" {
			idx.ByTask[fb.TaskID] = append(idx.ByTask[fb.TaskID], fb)
		}
	}
	return idx
}

// ForBlock returns the feedback recorded against the given block id.
func (idx FeedbackIndex) ForBlock(blockID string) []CompletionFeedback {
	return idx.ByBlock[blockID]
}

// ForTask returns the feedback recorded against the given task id.
func (idx FeedbackIndex) ForTask(taskID string) []CompletionFeedback {
	return idx.ByTask[taskID]
}
