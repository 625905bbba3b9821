package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/kubeflow/testing/pkg/configutils"
)

const envPrefix = "KUBEFLOW"

func configProvider(cli *cobra.Command, module WorkflowModule) fx.Option {
	return fx.Provide(func() (*viper.Viper, error) {
		v := viper.GetViper()

		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		var bindErr error
		cli.Flags().VisitAll(func(f *pflag.Flag) {
			if f.Name == "config" || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(f.Name, f)
		})
		if bindErr != nil {
			return nil, bindErr
		}

		if configFilePath != "" {
			if err := configutils.ResolveAndMergeFile(v, configFilePath); err != nil {
				return nil, fmt.Errorf("cannot read config file: %w", err)
			}
		}

		// Fix the issue where viper.UnmarshalKey only uses read config, neglects environment variables
		for _, key := range v.AllKeys() {
			v.Set(key, v.Get(key))
		}
		return v, nil
	})
}

// prepareRunDirs resolves test_dir and artifacts_dir before the fx app is
// built so the log file and the test report land in a known place even when
// dependency construction fails.
func prepareRunDirs(cli *cobra.Command, module WorkflowModule) (string, error) {
	v := viper.GetViper()

	testDir, err := cli.Flags().GetString("test_dir")
	if err != nil {
		return "", err
	}
	if testDir == "" {
		testDir = filepath.Join(os.TempDir(), "test_deploy-"+runLabel())
		v.Set("test_dir", testDir)
	}

	artifactsDir, err := cli.Flags().GetString("artifacts_dir")
	if err != nil {
		return "", err
	}
	if artifactsDir == "" {
		artifactsDir = testDir
		v.Set("artifacts_dir", artifactsDir)
	}

	logFile := filepath.Join(artifactsDir, "logs", "test_deploy."+module.Name()+".log.txt")
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return "", fmt.Errorf("creating log directory: %w", err)
	}
	v.Set("logging.filename", logFile)
	if debug {
		v.Set("logging.debug", true)
	}

	return artifactsDir, nil
}

// runLabel returns a short suffix like 0824-1130-ab12 used to keep
// concurrent runs on the same machine apart.
func runLabel() string {
	return time.Now().Format("0102-1504-") + uuid.NewString()[:4]
}
