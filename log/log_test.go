package log

import "testing"

func TestCanLog(t *testing.T) {
	table := map[LogLevel][]LogLevel{
		LOG_NOTHING: []LogLevel{},
		LOG_ERROR:   []LogLevel{LOG_ERROR},
		LOG_WARN:    []LogLevel{LOG_ERROR, LOG_WARN},
		LOG_INFO:    []LogLevel{LOG_ERROR, LOG_WARN, LOG_INFO},
		LOG_DEBUG:   []LogLevel{LOG_ERROR, LOG_WARN, LOG_INFO, LOG_DEBUG},
	}

	userLogLevels := []LogLevel{
		LOG_ERROR, LOG_WARN, LOG_INFO, LOG_DEBUG,
	}

	for current, permitted := range table {
		SetLevel(current)

		for _, level := range userLogLevels {
			loggable := CanLog(level)
			found := findLevel(level, permitted)

			if loggable != found {
				t.Errorf("Bad log permission '%v' at %v for %v", loggable, current, level)
			}
		}
	}
}

func TestParse(t *testing.T) {
	for _, level := range []LogLevel{LOG_NOTHING, LOG_ERROR, LOG_WARN, LOG_INFO, LOG_DEBUG} {
		parsed, err := Parse(level.String())

		if err != nil {
			t.Error(err)
		}

		if parsed != level {
			t.Errorf("Parse round trip failed for %v", level)
		}
	}

	_, err := Parse("bogus")

	if err == nil {
		t.Error("Expected Parse error")
	}
}

func findLevel(level LogLevel, levels []LogLevel) bool {
	for _, l := range levels {
		if level == l {
			return true
		}
	}

	return false
}
