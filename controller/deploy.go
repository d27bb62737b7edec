package controller

import (
	"context"

	"github.com/pkg/errors"
	"github.com/welaika/wordless-cli/configs"
	"github.com/welaika/wordless-cli/constants"
	wlerrors "github.com/welaika/wordless-cli/errors"
	"github.com/welaika/wordless-cli/entity"
)

// DeployCommand resolves the deploy command: --command, then deploy_command.
func (c *Controller) DeployCommand(flag string) (string, configs.Source, error) {
	command, source := c.cfg.Resolve(flag, configs.DeployCommandKey, "")
	if command == "" {
		return "", source, wlerrors.DeployCommandNotSet
	}
	return command, source, nil
}

// Deploy runs the deploy command. With refresh, assets are compiled before
// and cleaned after. A failed compile is reported but does not stop the
// deploy, and the clean step runs whatever happened in between.
func (c *Controller) Deploy(ctx context.Context, refresh bool, commandFlag string) (string, error) {
	if err := c.FileExists(constants.WPConfigFile); err != nil {
		return "", wlerrors.WordPressNotFound
	}

	var compileErr error
	if refresh {
		var msg string
		msg, compileErr = c.Compile(ctx)
		c.report(entity.NewOutcome(msg, compileErr))
	}

	err := c.runDeploy(ctx, commandFlag)

	if refresh {
		msg, cleanErr := c.Clean(ctx)
		c.report(entity.NewOutcome(msg, cleanErr))
		if err == nil {
			err = compileErr
		}
		if err == nil {
			err = cleanErr
		}
	}

	if err != nil {
		return "", err
	}
	return "Deployed.", nil
}

func (c *Controller) runDeploy(ctx context.Context, commandFlag string) error {
	command, _, err := c.DeployCommand(commandFlag)
	if err != nil {
		return err
	}
	if err := c.gtwy.RunShell(ctx, c.root, command); err != nil {
		return errors.WithMessage(err, "Deploy failed")
	}
	return nil
}
