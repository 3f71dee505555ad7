package env_config

import (
	"io/ioutil"
	"os"

	"auto-timer/pkg/common_errors"
	"auto-timer/pkg/timer"

	"github.com/Jeffail/gabs/v2"
	"golang.org/x/xerrors"
)

// Profile carries timer defaults parsed from a JSON config file. The
// expected shape is
//
//	{
//	    "Style": "pretty",
//	    "MinTimeToLog": 0.001,
//	    "Labels": {"load": 0.5, "flush": 0.01}
//	}
//
// where Labels overrides the threshold per timer label.
type Profile struct {
	LabelMin     map[string]float64
	Style        timer.LogStyle
	MinTimeToLog float64
}

func LoadProfile(configFile string) (*Profile, error) {
	jsonFile, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer jsonFile.Close()

	byteVal, err := ioutil.ReadAll(jsonFile)
	if err != nil {
		return nil, err
	}
	jsonParsed, err := gabs.ParseJSON(byteVal)
	if err != nil {
		return nil, xerrors.Errorf("%s: %v: %w", configFile, err, common_errors.ErrBadProfile)
	}

	prof := &Profile{
		LabelMin: make(map[string]float64),
		Style:    timer.PRETTY,
	}
	if styleTmp := jsonParsed.S("Style"); styleTmp != nil {
		styleStr, ok := styleTmp.Data().(string)
		if !ok {
			return nil, xerrors.Errorf("%s: Style is not a string: %w",
				configFile, common_errors.ErrBadProfile)
		}
		style, ok := styleFromString(styleStr)
		if !ok {
			return nil, xerrors.Errorf("%s: style %q: %w",
				configFile, styleStr, common_errors.ErrUnrecognizedLogStyle)
		}
		prof.Style = style
	}
	if minTmp := jsonParsed.S("MinTimeToLog"); minTmp != nil {
		min, ok := minTmp.Data().(float64)
		if !ok || min < 0 {
			return nil, xerrors.Errorf("%s: MinTimeToLog %v: %w",
				configFile, minTmp.Data(), common_errors.ErrBadMinTimeToLog)
		}
		prof.MinTimeToLog = min
	}
	for label, minTmp := range jsonParsed.S("Labels").ChildrenMap() {
		min, ok := minTmp.Data().(float64)
		if !ok || min < 0 {
			return nil, xerrors.Errorf("%s: label %s threshold %v: %w",
				configFile, label, minTmp.Data(), common_errors.ErrBadMinTimeToLog)
		}
		prof.LabelMin[label] = min
	}
	return prof, nil
}

// MinFor returns the logging threshold for label, falling back to the
// profile wide default.
func (p *Profile) MinFor(label string) float64 {
	if min, ok := p.LabelMin[label]; ok {
		return min
	}
	return p.MinTimeToLog
}

// NewTimer builds a timer for label using the profile's style and threshold.
func (p *Profile) NewTimer(label string, msg string) *timer.AutoTimer {
	return timer.NewWithLogger(msg, p.MinFor(label), timer.DefaultLogger(p.Style))
}
