package filecheck

import (
	"fmt"
	"os"
	"strings"

	"github.com/vertti/envread/pkg/check"
	"github.com/vertti/envread/pkg/envfile"
)

// Check verifies that an env file exists and meets requirements.
type Check struct {
	Path     string // file to check
	NotEmpty bool   // --not-empty: file must have size > 0
	MinSize  int64  // --min-size: minimum file size in bytes
	MaxSize  int64  // --max-size: maximum file size in bytes (0 = no limit)
	Contains string // --contains: literal string to search in content
	Match    string // --match: regex pattern for content
	Stater   Stater // injected for testing
}

// Run executes the env file check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("env file: %s", c.Path),
	}

	info, err := c.Stater.Stat(c.Path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return result.Fail("not found", err)
		case os.IsPermission(err):
			return result.Fail("permission denied", err)
		default:
			return result.Failf("stat failed: %v", err)
		}
	}

	if info.IsDir() {
		return result.Failf("expected file, got directory")
	}

	size := info.Size()
	result.AddDetailf("size: %d bytes", size)

	if c.NotEmpty && size == 0 {
		return result.Fail("file is empty", fmt.Errorf("file is empty"))
	}
	if c.MinSize > 0 && size < c.MinSize {
		return result.Failf("size %d < minimum %d", size, c.MinSize)
	}
	if c.MaxSize > 0 && size > c.MaxSize {
		return result.Failf("size %d > maximum %d", size, c.MaxSize)
	}

	if c.Contains != "" || c.Match != "" {
		if err := c.checkContent(&result); err != nil {
			return result
		}
	}

	result.Status = check.StatusOK
	return result
}

// checkContent reads the full file through the loader and applies the
// --contains and --match constraints.
func (c *Check) checkContent(result *check.Result) error {
	re, err := check.CompileRegex(c.Match)
	if err != nil {
		result.Failf("invalid regex pattern: %v", err)
		return err
	}

	loader := &envfile.Loader{Path: c.Path}
	content, err := loader.ReadAll()
	if err != nil {
		result.Failf("failed to read content: %v", err)
		return err
	}

	if c.Contains != "" && !strings.Contains(content, c.Contains) {
		err := fmt.Errorf("content does not contain %q", c.Contains)
		result.Fail(fmt.Sprintf("content does not contain %q", c.Contains), err)
		return err
	}

	if re != nil && !re.MatchString(content) {
		err := fmt.Errorf("content does not match pattern %q", c.Match)
		result.Fail(fmt.Sprintf("content does not match pattern %q", c.Match), err)
		return err
	}

	return nil
}
