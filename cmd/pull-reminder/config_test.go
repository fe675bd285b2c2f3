package main

import (
	"github.com/abhinav/pull-reminder/cli/clitest"
	"github.com/abhinav/pull-reminder/service"
)

type fakeConfigBuilder struct {
	clitest.ConfigBuilder

	Service service.Reminder
}

func (f *fakeConfigBuilder) Build() (config, error) {
	c, err := f.ConfigBuilder.Build()
	if err != nil {
		return config{}, err
	}

	return config{Config: c, Service: f.Service}, nil
}
