package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsHandleWhileDatabaseUnreachable(t *testing.T) {
	db, err := New(Config{
		DSN:             "host=127.0.0.1 port=1 user=plan password=plan dbname=plan sslmode=disable connect_timeout=1",
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})

	// The pool connects lazily, so opening must succeed even though
	// nothing listens on the port. Only Ping observes the outage.
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.Error(t, Ping(db, time.Second))
}
