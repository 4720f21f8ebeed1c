package debugui

type SceneBrowser struct {
	selectedEntityID uint64
	filterText       string
}

type ComponentInspector struct {
	selectedEntityID uint64
}

type TraversalStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
