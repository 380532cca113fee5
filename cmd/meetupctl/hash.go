package main

import (
	"fmt"
	"io"

	"meetup/internal/infra/auth"

	"github.com/pkg/errors"
)

func runHashPassword(out io.Writer, password string) error {
	hash, err := auth.NewBcryptHasher().Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	fmt.Fprintln(out, hash)

	return nil
}
