package database

import (
	"testing"
	"time"

	"ticket-purchase/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolConfig(t *testing.T) {
	poolConfig, err := NewPoolConfig(utils.DatabaseConfig{
		Host:     "db.internal",
		Port:     "6543",
		Name:     "tickets",
		User:     "svc",
		Password: "secret",
		MaxConns: 8,
	})
	require.NoError(t, err)

	conn := poolConfig.ConnConfig
	assert.Equal(t, "db.internal", conn.Host)
	assert.Equal(t, uint16(6543), conn.Port)
	assert.Equal(t, "tickets", conn.Database)
	assert.Equal(t, "svc", conn.User)
	assert.Equal(t, "secret", conn.Password)
	assert.Equal(t, 5*time.Second, conn.ConnectTimeout)

	assert.Equal(t, int32(8), poolConfig.MaxConns)
	assert.Equal(t, int32(2), poolConfig.MinConns)
	assert.Equal(t, 30*time.Minute, poolConfig.MaxConnLifetime)
}

func TestNewPoolConfig_SingleConnection(t *testing.T) {
	poolConfig, err := NewPoolConfig(utils.DatabaseConfig{
		Host: "localhost", Port: "5432", Name: "tickets", User: "svc", MaxConns: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), poolConfig.MaxConns)
	assert.Equal(t, int32(1), poolConfig.MinConns)
}

func TestNewPoolConfig_InvalidPort(t *testing.T) {
	_, err := NewPoolConfig(utils.DatabaseConfig{Host: "localhost", Port: "not-a-port", Name: "tickets"})
	assert.ErrorContains(t, err, "parse pool config")
}
