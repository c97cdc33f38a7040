package config

import "github.com/pkg/errors"

func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

func errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}
