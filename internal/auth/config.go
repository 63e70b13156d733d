package auth

import "time"

type Config struct {
	SecretKey      []byte
	Issuer         string
	AccessTokenExp time.Duration

	// Bootstrap credentials for the initial admin user. Created on start
	// when no user with that name exists yet.
	AdminUser     string
	AdminPassword string
}

const defaultAccessTokenExp = time.Hour

func (c Config) accessTokenExp() time.Duration {
	if c.AccessTokenExp <= 0 {
		return defaultAccessTokenExp
	}
	return c.AccessTokenExp
}
