package config

import (
	"errors"

	"github.com/ezrec/ybrainfuck/translate"
)

var f = translate.From

var (
	ErrSettingUnknown = errors.New(f("setting unknown"))
	ErrSettingType    = errors.New(f("setting has the wrong type"))
)

// ErrSetting reports a bad configuration global.
type ErrSetting struct {
	Name string
	Err  error
}

func (err *ErrSetting) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrSetting) Unwrap() error {
	return err.Err
}

// ErrConfig indicates the configuration file that failed to load.
type ErrConfig struct {
	Filename string
	Err      error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Filename, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
