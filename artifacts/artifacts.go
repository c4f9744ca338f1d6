// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

// Package artifacts loads compiled contract artifacts produced by hardhat or foundry.
package artifacts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tidwall/gjson"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
)

var (
	ErrConfiguration    = errors.New("configuration error")
	ErrArtifactNotFound = fmt.Errorf("%w: artifact not found", ErrConfiguration)
)

const (
	FormatHardhat = "hardhat"
	FormatFoundry = "foundry"
)

type Artifact struct {
	Name            string
	Path            string
	Format          string
	ABI             abi.ABI
	RawABI          string
	Bytecode        []byte
	CompilerVersion string
}

// Parse decodes a hardhat artifact (bytecode is a hex string) or a foundry
// artifact (bytecode.object holds the hex string).
func Parse(name string, path string, data []byte) (*Artifact, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrConfiguration, path)
	}
	root := gjson.ParseBytes(data)
	abiJSON := root.Get("abi")
	if !abiJSON.IsArray() {
		return nil, fmt.Errorf("%w: %s has no abi array", ErrConfiguration, path)
	}
	parsedABI, err := abi.JSON(strings.NewReader(abiJSON.Raw))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing abi of %s: %w", ErrConfiguration, path, err)
	}
	artifact := &Artifact{
		Name:   name,
		Path:   path,
		ABI:    parsedABI,
		RawABI: abiJSON.Raw,
	}

	var bytecodeHex string
	bytecode := root.Get("bytecode")
	switch {
	case bytecode.Type == gjson.String:
		artifact.Format = FormatHardhat
		bytecodeHex = bytecode.String()
	case bytecode.IsObject():
		artifact.Format = FormatFoundry
		bytecodeHex = bytecode.Get("object").String()
		artifact.CompilerVersion = compilerVersion(root.Get("metadata"))
	default:
		return nil, fmt.Errorf("%w: %s has no bytecode", ErrConfiguration, path)
	}
	if strings.Contains(bytecodeHex, "__") {
		return nil, fmt.Errorf("%w: %s has unlinked library references", ErrConfiguration, path)
	}
	if !strings.HasPrefix(bytecodeHex, "0x") {
		bytecodeHex = "0x" + bytecodeHex
	}
	artifact.Bytecode, err = hexutil.Decode(bytecodeHex)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding bytecode of %s: %w", ErrConfiguration, path, err)
	}
	return artifact, nil
}

// foundry writes metadata either as an object or as an embedded JSON string.
func compilerVersion(metadata gjson.Result) string {
	if metadata.Type == gjson.String {
		metadata = gjson.Parse(metadata.String())
	}
	return metadata.Get("compiler.version").String()
}

func (a *Artifact) Deployable() error {
	if len(a.Bytecode) == 0 {
		return fmt.Errorf("%w: %s has empty bytecode (interface or abstract contract?)", ErrConfiguration, a.Name)
	}
	return nil
}

// CheckAgainst fails when a method of the binding is missing from the artifact
// ABI or has a different signature.
func (a *Artifact) CheckAgainst(meta *bind.MetaData) error {
	bindingABI, err := meta.GetAbi()
	if err != nil {
		return fmt.Errorf("%w: parsing binding abi: %w", ErrConfiguration, err)
	}
	for name, method := range bindingABI.Methods {
		artifactMethod, ok := a.ABI.Methods[name]
		if !ok {
			return fmt.Errorf("%w: %s artifact has no method %s", ErrConfiguration, a.Name, method.Sig)
		}
		if artifactMethod.Sig != method.Sig {
			return fmt.Errorf("%w: %s artifact declares %s, binding expects %s", ErrConfiguration, a.Name, artifactMethod.Sig, method.Sig)
		}
		if artifactMethod.IsPayable() != method.IsPayable() {
			return fmt.Errorf("%w: %s.%s payability differs between artifact and binding", ErrConfiguration, a.Name, method.Sig)
		}
	}
	return nil
}

// Store finds artifacts by contract name below a root directory and caches them.
type Store struct {
	root            string
	compilerVersion string
	cache           *lru.Cache[string, *Artifact]
}

func NewStore(root string, compilerVersion string, cacheSize int) (*Store, error) {
	cache, err := lru.New[string, *Artifact](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Store{root: root, compilerVersion: compilerVersion, cache: cache}, nil
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Load(name string) (*Artifact, error) {
	if artifact, ok := s.cache.Get(name); ok {
		return artifact, nil
	}
	path, err := s.find(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrConfiguration, path, err)
	}
	artifact, err := Parse(name, path, data)
	if err != nil {
		return nil, err
	}
	if artifact.CompilerVersion != "" && s.compilerVersion != "" && !strings.HasPrefix(artifact.CompilerVersion, s.compilerVersion) {
		log.Warn("artifact compiled with a different solc version", "contract", name, "artifact", artifact.CompilerVersion, "configured", s.compilerVersion)
	}
	s.cache.Add(name, artifact)
	log.Debug("loaded artifact", "contract", name, "path", path, "format", artifact.Format, "bytes", len(artifact.Bytecode))
	return artifact, nil
}

func (s *Store) find(name string) (string, error) {
	want := name + ".json"
	var found []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == want {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: artifacts directory %s does not exist", ErrConfiguration, s.root)
		}
		return "", fmt.Errorf("%w: scanning %s: %w", ErrConfiguration, s.root, err)
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %s under %s", ErrArtifactNotFound, name, s.root)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: %s is ambiguous: %v", ErrConfiguration, name, found)
	}
}
