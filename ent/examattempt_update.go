// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sidverma/prepquiz/ent/examattempt"
	"github.com/sidverma/prepquiz/ent/predicate"
)

// ExamAttemptUpdate is the builder for updating ExamAttempt entities.
type ExamAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *ExamAttemptMutation
}

// Where appends a list predicates to the ExamAttemptUpdate builder.
func (_u *ExamAttemptUpdate) Where(ps ...predicate.ExamAttempt) *ExamAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *ExamAttemptUpdate) SetAnswers(v map[string]string) *ExamAttemptUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *ExamAttemptUpdate) ClearAnswers() *ExamAttemptUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetScore sets the "score" field.
func (_u *ExamAttemptUpdate) SetScore(v int) *ExamAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExamAttemptUpdate) SetNillableScore(v *int) *ExamAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExamAttemptUpdate) AddScore(v int) *ExamAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ExamAttemptUpdate) SetTotalQuestions(v int) *ExamAttemptUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ExamAttemptUpdate) SetNillableTotalQuestions(v *int) *ExamAttemptUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ExamAttemptUpdate) AddTotalQuestions(v int) *ExamAttemptUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ExamAttemptUpdate) SetDurationSecs(v int) *ExamAttemptUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ExamAttemptUpdate) SetNillableDurationSecs(v *int) *ExamAttemptUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ExamAttemptUpdate) AddDurationSecs(v int) *ExamAttemptUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *ExamAttemptUpdate) SetWeakTopics(v []string) *ExamAttemptUpdate {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *ExamAttemptUpdate) AppendWeakTopics(v []string) *ExamAttemptUpdate {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *ExamAttemptUpdate) ClearWeakTopics() *ExamAttemptUpdate {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *ExamAttemptUpdate) SetSuggestions(v []string) *ExamAttemptUpdate {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *ExamAttemptUpdate) AppendSuggestions(v []string) *ExamAttemptUpdate {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *ExamAttemptUpdate) ClearSuggestions() *ExamAttemptUpdate {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetState sets the "state" field.
func (_u *ExamAttemptUpdate) SetState(v examattempt.State) *ExamAttemptUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ExamAttemptUpdate) SetNillableState(v *examattempt.State) *ExamAttemptUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ExamAttemptUpdate) SetSubmittedAt(v time.Time) *ExamAttemptUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ExamAttemptUpdate) SetNillableSubmittedAt(v *time.Time) *ExamAttemptUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ExamAttemptUpdate) ClearSubmittedAt() *ExamAttemptUpdate {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// Mutation returns the ExamAttemptMutation object of the builder.
func (_u *ExamAttemptUpdate) Mutation() *ExamAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamAttemptUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := examattempt.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examattempt.Table, examattempt.Columns, sqlgraph.NewFieldSpec(examattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(examattempt.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(examattempt.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(examattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(examattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(examattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(examattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(examattempt.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(examattempt.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(examattempt.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattempt.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(examattempt.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(examattempt.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattempt.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(examattempt.FieldSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(examattempt.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(examattempt.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(examattempt.FieldSubmittedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamAttemptUpdateOne is the builder for updating a single ExamAttempt entity.
type ExamAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamAttemptMutation
}

// SetAnswers sets the "answers" field.
func (_u *ExamAttemptUpdateOne) SetAnswers(v map[string]string) *ExamAttemptUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *ExamAttemptUpdateOne) ClearAnswers() *ExamAttemptUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetScore sets the "score" field.
func (_u *ExamAttemptUpdateOne) SetScore(v int) *ExamAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExamAttemptUpdateOne) SetNillableScore(v *int) *ExamAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExamAttemptUpdateOne) AddScore(v int) *ExamAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ExamAttemptUpdateOne) SetTotalQuestions(v int) *ExamAttemptUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ExamAttemptUpdateOne) SetNillableTotalQuestions(v *int) *ExamAttemptUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ExamAttemptUpdateOne) AddTotalQuestions(v int) *ExamAttemptUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ExamAttemptUpdateOne) SetDurationSecs(v int) *ExamAttemptUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ExamAttemptUpdateOne) SetNillableDurationSecs(v *int) *ExamAttemptUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ExamAttemptUpdateOne) AddDurationSecs(v int) *ExamAttemptUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetWeakTopics sets the "weak_topics" field.
func (_u *ExamAttemptUpdateOne) SetWeakTopics(v []string) *ExamAttemptUpdateOne {
	_u.mutation.SetWeakTopics(v)
	return _u
}

// AppendWeakTopics appends value to the "weak_topics" field.
func (_u *ExamAttemptUpdateOne) AppendWeakTopics(v []string) *ExamAttemptUpdateOne {
	_u.mutation.AppendWeakTopics(v)
	return _u
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (_u *ExamAttemptUpdateOne) ClearWeakTopics() *ExamAttemptUpdateOne {
	_u.mutation.ClearWeakTopics()
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *ExamAttemptUpdateOne) SetSuggestions(v []string) *ExamAttemptUpdateOne {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *ExamAttemptUpdateOne) AppendSuggestions(v []string) *ExamAttemptUpdateOne {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *ExamAttemptUpdateOne) ClearSuggestions() *ExamAttemptUpdateOne {
	_u.mutation.ClearSuggestions()
	return _u
}

// SetState sets the "state" field.
func (_u *ExamAttemptUpdateOne) SetState(v examattempt.State) *ExamAttemptUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ExamAttemptUpdateOne) SetNillableState(v *examattempt.State) *ExamAttemptUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ExamAttemptUpdateOne) SetSubmittedAt(v time.Time) *ExamAttemptUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ExamAttemptUpdateOne) SetNillableSubmittedAt(v *time.Time) *ExamAttemptUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ExamAttemptUpdateOne) ClearSubmittedAt() *ExamAttemptUpdateOne {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// Mutation returns the ExamAttemptMutation object of the builder.
func (_u *ExamAttemptUpdateOne) Mutation() *ExamAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamAttemptUpdate builder.
func (_u *ExamAttemptUpdateOne) Where(ps ...predicate.ExamAttempt) *ExamAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamAttemptUpdateOne) Select(field string, fields ...string) *ExamAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamAttempt entity.
func (_u *ExamAttemptUpdateOne) Save(ctx context.Context) (*ExamAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamAttemptUpdateOne) SaveX(ctx context.Context) *ExamAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := examattempt.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.state": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamAttemptUpdateOne) sqlSave(ctx context.Context) (_node *ExamAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examattempt.Table, examattempt.Columns, sqlgraph.NewFieldSpec(examattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examattempt.FieldID)
		for _, f := range fields {
			if !examattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(examattempt.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(examattempt.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(examattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(examattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(examattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(examattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(examattempt.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(examattempt.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeakTopics(); ok {
		_spec.SetField(examattempt.FieldWeakTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattempt.FieldWeakTopics, value)
		})
	}
	if _u.mutation.WeakTopicsCleared() {
		_spec.ClearField(examattempt.FieldWeakTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(examattempt.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examattempt.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(examattempt.FieldSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(examattempt.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(examattempt.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(examattempt.FieldSubmittedAt, field.TypeTime)
	}
	_node = &ExamAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
