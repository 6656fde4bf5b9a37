// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sidverma/prepquiz/ent/examattempt"
	"github.com/sidverma/prepquiz/ent/schema"
)

// ExamAttemptCreate is the builder for creating a ExamAttempt entity.
type ExamAttemptCreate struct {
	config
	mutation *ExamAttemptMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ExamAttemptCreate) SetUserID(v string) *ExamAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *ExamAttemptCreate) SetQuestions(v []schema.StoredQuestion) *ExamAttemptCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *ExamAttemptCreate) SetAnswers(v map[string]string) *ExamAttemptCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ExamAttemptCreate) SetScore(v int) *ExamAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ExamAttemptCreate) SetNillableScore(v *int) *ExamAttemptCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *ExamAttemptCreate) SetTotalQuestions(v int) *ExamAttemptCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *ExamAttemptCreate) SetDurationSecs(v int) *ExamAttemptCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *ExamAttemptCreate) SetNillableDurationSecs(v *int) *ExamAttemptCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetWeakTopics sets the "weak_topics" field.
func (_c *ExamAttemptCreate) SetWeakTopics(v []string) *ExamAttemptCreate {
	_c.mutation.SetWeakTopics(v)
	return _c
}

// SetSuggestions sets the "suggestions" field.
func (_c *ExamAttemptCreate) SetSuggestions(v []string) *ExamAttemptCreate {
	_c.mutation.SetSuggestions(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ExamAttemptCreate) SetState(v examattempt.State) *ExamAttemptCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ExamAttemptCreate) SetNillableState(v *examattempt.State) *ExamAttemptCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExamAttemptCreate) SetCreatedAt(v time.Time) *ExamAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExamAttemptCreate) SetNillableCreatedAt(v *time.Time) *ExamAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *ExamAttemptCreate) SetSubmittedAt(v time.Time) *ExamAttemptCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *ExamAttemptCreate) SetNillableSubmittedAt(v *time.Time) *ExamAttemptCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExamAttemptCreate) SetID(v string) *ExamAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExamAttemptMutation object of the builder.
func (_c *ExamAttemptCreate) Mutation() *ExamAttemptMutation {
	return _c.mutation
}

// Save creates the ExamAttempt in the database.
func (_c *ExamAttemptCreate) Save(ctx context.Context) (*ExamAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamAttemptCreate) SaveX(ctx context.Context) *ExamAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamAttemptCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := examattempt.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := examattempt.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := examattempt.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := examattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamAttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExamAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := examattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "ExamAttempt.questions"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ExamAttempt.score"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "ExamAttempt.total_questions"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "ExamAttempt.duration_secs"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ExamAttempt.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := examattempt.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExamAttempt.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := examattempt.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ExamAttemptCreate) sqlSave(ctx context.Context) (*ExamAttempt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ExamAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExamAttemptCreate) createSpec() (*ExamAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examattempt.Table, sqlgraph.NewFieldSpec(examattempt.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(examattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(examattempt.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(examattempt.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(examattempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(examattempt.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(examattempt.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.WeakTopics(); ok {
		_spec.SetField(examattempt.FieldWeakTopics, field.TypeJSON, value)
		_node.WeakTopics = value
	}
	if value, ok := _c.mutation.Suggestions(); ok {
		_spec.SetField(examattempt.FieldSuggestions, field.TypeJSON, value)
		_node.Suggestions = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(examattempt.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(examattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(examattempt.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	return _node, _spec
}

// ExamAttemptCreateBulk is the builder for creating many ExamAttempt entities in bulk.
type ExamAttemptCreateBulk struct {
	config
	err      error
	builders []*ExamAttemptCreate
}

// Save creates the ExamAttempt entities in the database.
func (_c *ExamAttemptCreateBulk) Save(ctx context.Context) ([]*ExamAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamAttemptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExamAttemptCreateBulk) SaveX(ctx context.Context) []*ExamAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
