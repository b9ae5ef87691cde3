package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"check-compromised/internal/shared"
	"check-compromised/internal/types"
)

// ParseEcosystem maps a configuration value onto an Ecosystem. An empty
// value selects npm.
func ParseEcosystem(value string) (types.Ecosystem, error) {
	switch types.Ecosystem(strings.ToLower(strings.TrimSpace(value))) {
	case "", types.EcosystemNpm:
		return types.EcosystemNpm, nil
	case types.EcosystemPip:
		return types.EcosystemPip, nil
	case types.EcosystemDeb:
		return types.EcosystemDeb, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported ecosystem %q (want npm, pip or deb)", value))
	}
}

// versionCache memoizes parsed version objects so that an installed
// version is parsed once even when its name has many compromised versions.
type versionCache struct {
	ecosystem types.Ecosystem
	deb       map[string]debversion.Version
	pep       map[string]pep440.Version
}

func newVersionCache(ecosystem types.Ecosystem) *versionCache {
	return &versionCache{
		ecosystem: ecosystem,
		deb:       map[string]debversion.Version{},
		pep:       map[string]pep440.Version{},
	}
}

func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}

// equal reports whether two version strings denote the same release under
// the cache's ecosystem rules. Unparseable versions are never equal here;
// byte-identical strings are caught by the exact key lookup before this.
func (c *versionCache) equal(a string, b string) bool {
	switch c.ecosystem {
	case types.EcosystemDeb:
		v1, err := c.debVersion(a)
		if err != nil {
			return false
		}
		v2, err := c.debVersion(b)
		if err != nil {
			return false
		}
		return v1.Equal(v2)
	case types.EcosystemPip:
		v1, err := c.pepVersion(a)
		if err != nil {
			return false
		}
		v2, err := c.pepVersion(b)
		if err != nil {
			return false
		}
		return v1.Equal(v2)
	default:
		return false
	}
}

// canonicalName returns the name used to group compromised versions.
func canonicalName(ecosystem types.Ecosystem, name string) string {
	switch ecosystem {
	case types.EcosystemPip:
		return shared.NormalizePipName(name)
	case types.EcosystemDeb:
		return strings.ToLower(strings.TrimSpace(name))
	default:
		return name
	}
}
