package main

import (
	"testing"

	"github.com/signadot/pbxproj/format"
)

func TestOutFormat(t *testing.T) {
	yamlFmt := format.YAMLFormat
	tests := []struct {
		cfg  MainConfig
		want format.Format
	}{
		{MainConfig{}, format.PBXProjFormat},
		{MainConfig{Out: "-"}, format.PBXProjFormat},
		{MainConfig{Out: "objects.json"}, format.JSONFormat},
		{MainConfig{Out: "objects.json", Y: true}, format.YAMLFormat},
		{MainConfig{Out: "MyApp.xcodeproj/project.pbxproj", OutFormat: &yamlFmt}, format.YAMLFormat},
	}
	for i, tc := range tests {
		if got := tc.cfg.outFormat(); got != tc.want {
			t.Errorf("%d: got %s want %s", i, got, tc.want)
		}
	}
}
