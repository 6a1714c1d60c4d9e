package main

type model struct {
	width          int
	height         int
	cursorRow      int
	cursorCol      int
	engine         *Engine
	config         *Config
	sink           ExportSink
	help           bool
	errorMessage   string
	successMessage string
}

func initialModel(config *Config) model {
	engine := NewEngine(config)
	center := engine.Grid().Size() / 2
	return model{
		cursorRow: center,
		cursorCol: center,
		engine:    engine,
		config:    config,
		sink:      FileSink{Config: config},
	}
}
